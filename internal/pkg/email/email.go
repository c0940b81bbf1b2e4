package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Notifier sends HTML notification emails. All event methods dispatch
// asynchronously: delivery failures are logged and never reach the
// caller, so core state transitions cannot be rolled back by a mail
// outage.
type Notifier struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

var _ notification.Notifier = (*Notifier)(nil)

func NewNotifier(cfg config.SMTPConfig) (*Notifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &Notifier{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveRequestedData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	TotalDays    string
	Reason       string
}

// LeaveRequested notifies the HR inbox about a new request.
func (n *Notifier) LeaveRequested(ctx context.Context, request leave.LeaveRequest, emp employee.Employee) {
	data := leaveRequestedData{
		EmployeeName: emp.FullName,
		LeaveType:    string(request.LeaveType),
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		TotalDays:    request.TotalDays.String(),
		Reason:       request.Reason,
	}
	subject := fmt.Sprintf("New leave request from %s", emp.FullName)
	n.dispatch(n.cfg.HRAddress, subject, "leave_requested.html", data)
}

type leaveDecidedData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Status       string
	ApproverName string
	Comments     string
}

// LeaveDecided notifies the employee about an approval or rejection.
func (n *Notifier) LeaveDecided(ctx context.Context, request leave.LeaveRequest, emp employee.Employee, approverName string) {
	data := leaveDecidedData{
		EmployeeName: emp.FullName,
		LeaveType:    string(request.LeaveType),
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Status:       string(request.Status),
		ApproverName: approverName,
	}
	if request.AdminComments != nil {
		data.Comments = *request.AdminComments
	}
	subject := fmt.Sprintf("Your leave request was %s", request.Status)
	n.dispatch(emp.Email, subject, "leave_decided.html", data)
}

type missedCheckoutData struct {
	EmployeeName string
}

func (n *Notifier) MissedCheckout(ctx context.Context, emp employee.Employee) {
	n.dispatch(emp.Email, "You forgot to check out today", "missed_checkout.html", missedCheckoutData{EmployeeName: emp.FullName})
}

type celebrationData struct {
	EmployeeName string
	Occasion     string
}

func (n *Notifier) Birthday(ctx context.Context, emp employee.Employee) {
	n.dispatch(emp.Email, "Happy birthday!", "celebration.html", celebrationData{
		EmployeeName: emp.FullName,
		Occasion:     "We wish you a wonderful birthday!",
	})
}

func (n *Notifier) Anniversary(ctx context.Context, emp employee.Employee, years int) {
	n.dispatch(emp.Email, "Happy work anniversary!", "celebration.html", celebrationData{
		EmployeeName: emp.FullName,
		Occasion:     fmt.Sprintf("Congratulations on %d years with the company!", years),
	})
}

// dispatch renders and sends in the background. Errors are logged only.
func (n *Notifier) dispatch(to, subject, templateName string, data interface{}) {
	go func() {
		var body bytes.Buffer
		if err := n.templates.ExecuteTemplate(&body, templateName, data); err != nil {
			slog.Error("Failed to render notification template", "template", templateName, "error", err)
			return
		}

		if err := n.sendHTML(to, subject, body.String()); err != nil {
			slog.Error("Failed to deliver notification", "to", to, "subject", subject, "error", err)
		}
	}()
}

func (n *Notifier) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if n.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := n.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", n.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
