package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"ezyvoyage/internal/config"
)

const WelcomeSubject = "Welcome to EzyVoyage AI - Your Journey Begins!"

type IMailService interface {
	SendWelcomeEmail(ctx context.Context, to, fullName string) error
}

type smtpMailService struct {
	cfg     config.MailConfig
	appName string
	htmlTpl *template.Template
	textTpl *template.Template
	log     *zap.Logger
}

// NewMailService returns a no-op sender when mail is disabled.
func NewMailService(cfg *config.Config, log *zap.Logger) IMailService {
	if !cfg.Mail.Enabled {
		return disabledMailService{log: log}
	}
	return &smtpMailService{
		cfg:     cfg.Mail,
		appName: cfg.App.Name,
		htmlTpl: template.Must(template.New("welcomeHTML").Parse(welcomeHTMLTemplate)),
		textTpl: template.Must(template.New("welcomeText").Parse(welcomeTextTemplate)),
		log:     log,
	}
}

type disabledMailService struct {
	log *zap.Logger
}

func (d disabledMailService) SendWelcomeEmail(_ context.Context, to, _ string) error {
	d.log.Debug("mail disabled, skipping welcome email", zap.String("to", to))
	return nil
}

type welcomeData struct {
	Name    string
	AppName string
	Year    int
}

func (s *smtpMailService) SendWelcomeEmail(ctx context.Context, to, fullName string) error {
	html, text, err := s.render(welcomeData{Name: fullName, AppName: s.appName, Year: time.Now().Year()})
	if err != nil {
		return err
	}
	if err := s.send(ctx, to, WelcomeSubject, html, text); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	s.log.Info("welcome email sent", zap.String("to", to))
	return nil
}

const welcomeHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Welcome to {{.AppName}}</title></head>
<body style="margin:0;padding:0;background:#0f172a;">
  <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%); color: white; padding: 20px; border-radius: 10px;">
    <div style="text-align: center; margin-bottom: 30px;">
      <h1 style="color: #22d3ee; font-size: 2.5rem; margin-bottom: 10px;">{{.AppName}}</h1>
      <p style="font-size: 1.2rem; margin: 0;">Your Next Adventure Starts Here</p>
    </div>
    <div style="background: rgba(255,255,255,0.1); padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h2 style="color: #22d3ee; margin-top: 0;">Welcome, {{.Name}}!</h2>
      <p style="font-size: 1.1rem; line-height: 1.6;">Welcome to {{.AppName}}! We're thrilled to have you join our community of adventurous travelers.</p>
      <p style="font-size: 1rem; line-height: 1.6; margin-bottom: 0;">Your personalized travel planning experience is now ready. Let our AI-powered system craft the perfect journey tailored just for you, based on your preferences and travel style.</p>
    </div>
    <div style="background: rgba(34, 211, 238, 0.1); padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="color: #22d3ee; margin-top: 0;">What's Next?</h3>
      <ul style="font-size: 1rem; line-height: 1.6; margin: 0; padding-left: 20px;">
        <li>Explore AI-powered travel recommendations</li>
        <li>Discover hidden gems beyond the tourist trail</li>
        <li>Get perfectly timed itineraries for your adventures</li>
        <li>Experience personalized travel planning like never before</li>
      </ul>
    </div>
    <div style="text-align: center; margin-top: 30px;">
      <p style="font-size: 0.9rem; opacity: 0.8;">Happy travels,<br>The {{.AppName}} Team</p>
    </div>
  </div>
</body>
</html>`

const welcomeTextTemplate = `Welcome, {{.Name}}!

Welcome to {{.AppName}}! We're thrilled to have you join our community of adventurous travelers.

What's next?
- Explore AI-powered travel recommendations
- Discover hidden gems beyond the tourist trail
- Get perfectly timed itineraries for your adventures

Happy travels,
The {{.AppName}} Team (c) {{.Year}}
`

func (s *smtpMailService) render(data welcomeData) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) message(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var (
		conn net.Conn
		err  error
	)
	if s.cfg.UseSSL {
		// SMTPS, usually port 465
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(s.message(to, subject, htmlBody, textBody)); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
