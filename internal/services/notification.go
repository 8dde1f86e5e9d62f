package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/pkg/logger"
	"gorm.io/gorm"
)

// NotificationService delivers mail to residents. Delivery is a no-op
// when SMTP is disabled in the config.
type NotificationService struct {
	db       *gorm.DB
	smtp     *config.SMTPConfig
	holidays *HolidayService
	country  string
}

func NewNotificationService(db *gorm.DB, smtpCfg *config.SMTPConfig, jobsCfg *config.JobsConfig) *NotificationService {
	country := "US"
	if jobsCfg != nil && jobsCfg.ReminderCountry != "" {
		country = jobsCfg.ReminderCountry
	}
	return &NotificationService{
		db:       db,
		smtp:     smtpCfg,
		holidays: NewHolidayService(),
		country:  country,
	}
}

// ProcessEmailJob is the worker-side handler for queued notifications.
func (s *NotificationService) ProcessEmailJob(ctx context.Context, job *EmailNotificationJob) error {
	return s.SendToUser(job.UserID, job.Subject, job.Body)
}

// SendToUser resolves the user's address and sends a single mail.
func (s *NotificationService) SendToUser(userID, subject, body string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if !user.IsActive || user.Email == "" {
		logger.Infof("[Notification] Skipping mail to inactive or addressless user %s", userID)
		return nil
	}

	return s.sendEmail([]string{user.Email}, subject, body)
}

// SendDueTaskReminders queues a reminder for every open task due within
// the next 24 hours. The sweep stays quiet on weekends and holidays.
func (s *NotificationService) SendDueTaskReminders(queue JobQueue) error {
	now := time.Now()
	if !s.holidays.IsWorkday(now, s.country) {
		logger.Infof("[Notification] Skipping reminder sweep, %s is not a workday", now.Format("2006-01-02"))
		return nil
	}

	cutoff := now.Add(24 * time.Hour)

	var tasks []models.Task
	if err := s.db.
		Where("status <> ?", models.TaskStatusDone).
		Where("assignee_id IS NOT NULL").
		Where("due_date IS NOT NULL AND due_date <= ?", cutoff).
		Find(&tasks).Error; err != nil {
		return err
	}

	for i := range tasks {
		task := &tasks[i]
		subject := fmt.Sprintf("Task due soon: %s", task.Title)
		body := s.buildReminderBody(task)

		job := &EmailNotificationJob{
			UserID:  *task.AssigneeID,
			Subject: subject,
			Body:    body,
		}
		if err := queue.EnqueueEmail(job); err != nil {
			LogError("notification", "reminder_enqueue", err.Error(), task.AssigneeID, "", "", map[string]string{"task_id": task.ID})
		}
	}

	logger.Infof("[Notification] Queued %d due-task reminders", len(tasks))
	return nil
}

func (s *NotificationService) buildReminderBody(task *models.Task) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>Task Reminder</h2>")
	sb.WriteString(fmt.Sprintf("<p>Your task <strong>%s</strong> is due soon.</p>", task.Title))

	if task.Description != "" {
		sb.WriteString(fmt.Sprintf("<pre style=\"background: #f5f5f5; padding: 12px; border-radius: 4px;\">%s</pre>", task.Description))
	}
	if task.DueDate != nil {
		sb.WriteString(fmt.Sprintf("<p>Due: %s</p>", task.DueDate.Format("2006-01-02 15:04")))
	}

	sb.WriteString("<hr><p style=\"color: #888; font-size: 12px;\">theCooperator</p>")
	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *NotificationService) sendEmail(to []string, subject, body string) error {
	if s.smtp == nil || !s.smtp.Enabled || s.smtp.Host == "" {
		return nil
	}
	if len(to) == 0 {
		return nil
	}

	from := s.smtp.From
	if from == "" {
		from = s.smtp.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.smtp.Host, s.smtp.Port)

	var auth smtp.Auth
	if s.smtp.Username != "" && s.smtp.Password != "" {
		auth = smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	}

	var err error
	if s.smtp.UseTLS {
		err = s.sendEmailTLS(addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Infof("[Notification] Failed to send email: %v", err)
		return err
	}

	logger.Infof("[Notification] Sent mail to %v", to)
	return nil
}

func (s *NotificationService) sendEmailTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.smtp.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.smtp.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	if _, err = w.Write([]byte(message)); err != nil {
		return err
	}

	return w.Close()
}
