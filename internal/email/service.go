package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucascresencio/leet-test/internal/logger"
	"github.com/lucascresencio/leet-test/internal/metrics"
	"github.com/lucascresencio/leet-test/internal/payment"
)

const (
	queueKey  = "emails"
	failedKey = "emails:failed"
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Service queues donation emails on redis and drains the queue from a
// background worker. Sending is best effort with a bounded retry; jobs
// that keep failing land on a dead-letter list for inspection.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	job := EmailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return err
	}

	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after 3 attempts", job.To)
			s.saveFailed(job, err)
			metrics.RecordEmail("donation", "failed")
		}
		return
	}

	logger.Infof("Email sent successfully to %s", job.To)
	metrics.RecordEmail("donation", "sent")
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.SetEmailQueueLength(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// PaymentConfirmed sends a donation receipt once a transaction has
// been reconciled as paid.
func (s *Service) PaymentConfirmed(ctx context.Context, to, name string, tx *payment.Transaction) error {
	subject := "Doação confirmada - Leet"
	body := fmt.Sprintf(`Olá %s,

Sua doação foi confirmada!

Valor: R$ %s
Método: %s
Data: %s

Obrigado por apoiar essa causa.

- Equipe Leet`, name, tx.Amount.StringFixed(2), methodLabel(tx.PaymentMethod), tx.UpdatedAt.Format("02/01/2006 15:04"))

	return s.Send(ctx, to, name, subject, body)
}

// PaymentFailed tells the donor a donation attempt did not complete.
func (s *Service) PaymentFailed(ctx context.Context, to, name, reason string, tx *payment.Transaction) error {
	subject := "Doação não concluída - Leet"
	body := fmt.Sprintf(`Olá %s,

Infelizmente sua doação de R$ %s não pôde ser concluída.

Motivo: %s

Você pode tentar novamente a qualquer momento.

- Equipe Leet`, name, tx.Amount.StringFixed(2), reason)

	return s.Send(ctx, to, name, subject, body)
}

func methodLabel(method payment.PaymentMethod) string {
	switch method {
	case payment.MethodCreditCard:
		return "Cartão de crédito"
	case payment.MethodBoleto:
		return "Boleto"
	case payment.MethodPix:
		return "PIX"
	}
	return string(method)
}
