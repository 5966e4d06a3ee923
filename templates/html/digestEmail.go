// Package templates holds the HTML bodies for outgoing email.
package templates

import "fmt"

// RenderDailyDigestEmail generates branded HTML for the daily activity
// digest sent to the operations inbox.
func RenderDailyDigestEmail(reportCount, commentCount int64) string {
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Daily Digest</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #0a0a0f; }
    .container { max-width: 600px; margin: 0 auto; background-color: #12121f; }
    .header { background: linear-gradient(135deg, #f0932b 0%%, #eb4d4b 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #e5e7eb; line-height: 1.6; font-size: 15px; }
    .stat { font-size: 32px; font-weight: 700; color: #f0932b; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid rgba(255,255,255,0.1); }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Festival Report Daily Digest</h1>
    </div>
    <div class="content">
      <p><span class="stat">%d</span> new reports in the last 24 hours</p>
      <p><span class="stat">%d</span> new comments in the last 24 hours</p>
    </div>
    <div class="footer">
      <p>&copy; Festival Report</p>
    </div>
  </div>
</body>
</html>`, reportCount, commentCount)
}
