package service

import (
	"bytes"
	"html/template"
)

// EventDetail is the slice of event data the confirmation mail renders.
type EventDetail struct {
	Name     string
	Date     string
	Time     string
	Location string
}

type confirmationData struct {
	Name   string
	Events []EventDetail
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Registration Confirmed</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;">
  <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%">
    <tr>
      <td style="padding: 20px 0 40px 0;" align="center">
        <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="600" style="background-color: #ffffff; border-radius: 8px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); overflow: hidden;">
          <tr>
            <td style="background-color: #1a202c; padding: 30px; text-align: center; color: #ffffff;">
              <h1 style="margin: 0; font-size: 24px; font-weight: bold; letter-spacing: 1px;">PAISLEY HIGHLAND GAMES</h1>
              <p style="margin: 5px 0 0 0; font-size: 14px; opacity: 0.8;">Registration Confirmation</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 30px;">
              <p style="font-size: 16px; line-height: 1.6; color: #333333; margin-bottom: 20px;">
                Dear <strong>{{.Name}}</strong>,
              </p>
              <p style="font-size: 16px; line-height: 1.6; color: #555555; margin-bottom: 30px;">
                We have successfully received your application! Here are the details of the competitions you have registered for:
              </p>
              {{range .Events}}
              <div style="background-color: #ffffff; border: 1px solid #e0e0e0; border-radius: 8px; margin-bottom: 16px; overflow: hidden;">
                <div style="background-color: #005eb8; padding: 10px 15px; color: #ffffff;">
                  <h3 style="margin: 0; font-size: 18px;">🏅 {{.Name}}</h3>
                </div>
                <div style="padding: 15px;">
                  <table width="100%" cellpadding="0" cellspacing="0" border="0">
                    <tr>
                      <td width="25" valign="top">📅</td>
                      <td style="padding-bottom: 8px; color: #333;"><strong>Date:</strong> {{.Date}}</td>
                    </tr>
                    <tr>
                      <td width="25" valign="top">⏰</td>
                      <td style="padding-bottom: 8px; color: #333;"><strong>Time:</strong> {{.Time}}</td>
                    </tr>
                    <tr>
                      <td width="25" valign="top">📍</td>
                      <td style="color: #333;"><strong>Location:</strong> {{.Location}}</td>
                    </tr>
                  </table>
                </div>
              </div>
              {{end}}
              <div style="background-color: #fff8dc; border-left: 4px solid #f6ad55; padding: 15px; margin-top: 30px; border-radius: 4px;">
                <p style="margin: 0; color: #7c4a03; font-size: 14px;">
                  <strong>Current Status:</strong> PENDING APPROVAL<br>
                  Our team will review your application shortly. You can check your status anytime by logging into our website.
                </p>
              </div>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f8f9fa; padding: 20px; text-align: center; border-top: 1px solid #eeeeee;">
              <p style="margin: 0; font-size: 12px; color: #999999;">
                &copy; 2025 Paisley Highland Games. All rights reserved.<br>
                Paisley, Scotland, UK
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

// RenderConfirmation fills the registration confirmation template. Empty
// date/time/location fall back to placeholder copy.
func RenderConfirmation(name string, events []EventDetail) (string, error) {
	filled := make([]EventDetail, len(events))
	for i, ev := range events {
		if ev.Date == "" {
			ev.Date = "TBD"
		}
		if ev.Time == "" {
			ev.Time = "TBD"
		}
		if ev.Location == "" {
			ev.Location = "Main Arena"
		}
		filled[i] = ev
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, confirmationData{Name: name, Events: filled}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
