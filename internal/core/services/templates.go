package services

const orderConfirmationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Order Confirmation</h2>
  <p>Dear {{ customer_name }},</p>
  <p>Thank you for your order! We've received your order and are processing it now.</p>

  <h3>Order Details:</h3>
  <p><strong>Order ID:</strong> {{ order_id }}</p>
  <p><strong>Order Date:</strong> {{ order_date }}</p>

  <h3>Items:</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr style="background-color: #f2f2f2;">
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Product</th>
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Quantity</th>
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Price</th>
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
      </tr>
    </thead>
    <tbody>
      {%- for item in items %}
      <tr>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ item.product_name }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ item.quantity }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">${{ item.unit_price | money }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">${{ item.subtotal | money }}</td>
      </tr>
      {%- endfor %}
    </tbody>
    <tfoot>
      <tr>
        <td colspan="3" style="padding: 8px; text-align: right; border: 1px solid #ddd;"><strong>Total:</strong></td>
        <td style="padding: 8px; border: 1px solid #ddd;"><strong>${{ total_amount | money }}</strong></td>
      </tr>
    </tfoot>
  </table>

  <h3>Shipping Address:</h3>
  <p>
    {{ street }}<br>
    {{ city }}, {{ state }} {{ postal_code }}<br>
    {{ country }}
  </p>

  <p>We'll update you when your order ships.</p>
  <p>If you have any questions, please contact our customer service.</p>

  <p>Thank you for shopping with us!</p>
</div>`

const orderStatusUpdateTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Order Status Update</h2>
  <p>Dear {{ customer_name }},</p>
  <p>{{ status_message }}</p>

  <h3>Order Details:</h3>
  <p><strong>Order ID:</strong> {{ order_id }}</p>
  <p><strong>Order Date:</strong> {{ order_date }}</p>
  <p><strong>Current Status:</strong> {{ status }}</p>

  <p>Thank you for shopping with us!</p>
</div>`

const paymentConfirmationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Payment Confirmation</h2>
  <p>Dear {{ customer_name }},</p>
  <p>We're writing to confirm that we've received your payment for order #{{ order_id }}.</p>

  <h3>Payment Details:</h3>
  <p><strong>Order ID:</strong> {{ order_id }}</p>
  <p><strong>Payment Amount:</strong> ${{ total_amount | money }}</p>
  <p><strong>Payment Status:</strong> {{ payment_status }}</p>

  <p>Thank you for your purchase!</p>
</div>`

const promotionTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Today's Special Discounts</title>
</head>
<body style="font-family: 'Helvetica Neue', Arial, sans-serif; line-height: 1.6; color: #333333; margin: 0; padding: 0; background-color: #f9f9f9;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background-color: #3AA39F; padding: 20px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-weight: 300; font-size: 24px;">Today's Special Discounts</h1>
    </div>
    <div style="padding: 30px;">
      <h2>Hello {{ recipient_name }}!</h2>
      <p>We're excited to share today's special discounts with you. Don't miss out on these amazing deals!</p>

      <div style="background-color: #f5f5f5; padding: 10px; border-radius: 4px; text-align: center; margin: 20px 0;">
        <p style="margin: 0; font-weight: bold;">Today's Deals End In:</p>
        <p style="margin: 5px 0; font-size: 18px; color: #3AA39F;">12 hours</p>
      </div>

      {%- for product in products %}
      <div style="margin-bottom: 20px; border-bottom: 1px solid #eee; padding-bottom: 15px;">
        <h3 style="color: #333; margin-bottom: 5px;">{{ product.name }}</h3>
        <p style="margin: 5px 0; font-size: 16px;">
          <span style="text-decoration: line-through; color: #999;">${{ product.original_price | money }}</span>
          <span style="color: #3AA39F; font-weight: bold; margin-left: 10px;">${{ product.discount_price | money }}</span>
          <span style="background-color: #3AA39F; color: white; padding: 2px 6px; border-radius: 10px; font-size: 12px; margin-left: 8px;">{{ product.discount_percent }}% OFF</span>
        </p>
        <p style="color: #666; margin-top: 5px;">{{ product.description }}</p>
      </div>
      {%- endfor %}

      <p>Happy shopping!</p>
      <p>Best regards,<br>The Team</p>
    </div>
    <div style="background-color: #f5f5f5; padding: 15px; text-align: center; font-size: 12px; color: #666666;">
      <p>&copy; 2025 Your Company. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`
