package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// ReminderData feeds the reminder template.
type ReminderData struct {
	Name            string
	ApartmentNumber string
	Date            time.Time
	ColdWater       string
	HotWater        string
	Amount          string
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
  .bill-details { background-color: white; padding: 15px; margin: 20px 0; border-left: 4px solid #4CAF50; }
  .amount { font-size: 24px; font-weight: bold; color: #e53935; }
  .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
  td { padding: 8px; border-bottom: 1px solid #ddd; }
  .label { font-weight: bold; width: 40%; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Water Bill Reminder</h1></div>
  <p>Hello, <strong>{{.Name}}</strong>!</p>
  <p>This is a reminder about your unpaid water bill.</p>
  <div class="bill-details">
    <h3>Bill details</h3>
    <table>
      <tr><td class="label">Apartment:</td><td>{{.ApartmentNumber}}</td></tr>
      <tr><td class="label">Date:</td><td>{{.Date.Format "02.01.2006"}}</td></tr>
      <tr><td class="label">Cold water:</td><td>{{.ColdWater}} m³</td></tr>
      <tr><td class="label">Hot water:</td><td>{{.HotWater}} m³</td></tr>
      <tr><td class="label">Amount due:</td><td class="amount">€{{.Amount}}</td></tr>
    </table>
  </div>
  <p>Please pay the bill as soon as possible.</p>
  <p>Kind regards,<br>Building management</p>
  <div class="footer"><p>This is an automated reminder. Please do not reply.</p></div>
</div>
</body>
</html>
`))

// ReminderSubject is the subject line for a reminder about apartment.
func ReminderSubject(apartment string) string {
	return fmt.Sprintf("Water bill reminder - Apartment %s", apartment)
}

// RenderReminder renders the HTML body. Values are escaped by html/template.
func RenderReminder(d ReminderData) (string, error) {
	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render reminder: %w", err)
	}
	return buf.String(), nil
}
