package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MailChannel selects the notification transport: "smtp" or "ses".
	MailChannel  string
	MailFrom     string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	AWSAccessKey string
	AWSSecretKey string
	AWSRegion    string

	// PromotionSchedule is a five-field cron expression for the daily
	// campaign; empty selects the default noon schedule.
	PromotionSchedule string
}
