// Package services provides the core notification services: the Dispatcher,
// which pushes rendered messages through a NotificationChannel with
// partial-failure accounting, and the MessageFactory, which renders the
// transactional and promotional email bodies from Liquid templates.
package services
