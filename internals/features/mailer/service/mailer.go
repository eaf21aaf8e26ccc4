package service

import (
	"encoding/json"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"paisleygames_backend/internals/configs"
	"paisleygames_backend/internals/features/mailer/model"
)

const confirmationSubject = "Registration Confirmed"

// Notifier sends registration confirmation mail. Delivery never blocks a
// request and never fails one: callers dispatch through a goroutine and
// every attempt ends up in mail_log.
type Notifier struct {
	DB     *gorm.DB
	dialer *gomail.Dialer
	from   string
}

func NewNotifierFromEnv(db *gorm.DB) *Notifier {
	n := &Notifier{DB: db, from: configs.SMTPUser}
	if configs.SMTPHost == "" {
		log.Println("⚠️ Mailer disabled (EMAIL_HOST empty)")
		return n
	}

	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 465
	}
	d := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPass)
	d.SSL = true
	n.dialer = d
	return n
}

// SendRegistrationConfirmation renders and delivers one confirmation mail
// covering all resolved events. Run it in a goroutine; errors are logged
// and recorded, not returned.
func (n *Notifier) SendRegistrationConfirmation(name, email string, events []EventDetail) {
	if n.dialer == nil {
		n.record(email, "disabled", "", name, events)
		return
	}

	html, err := RenderConfirmation(name, events)
	if err != nil {
		log.Println("[ERROR] render confirmation mail:", err)
		n.record(email, "failed", err.Error(), name, events)
		return
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, "Paisley Games")
	m.SetHeader("To", email)
	m.SetHeader("Subject", confirmationSubject)
	m.SetBody("text/html", html)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Println("[ERROR] send confirmation mail:", err)
		n.record(email, "failed", err.Error(), name, events)
		return
	}
	n.record(email, "sent", "", name, events)
}

func (n *Notifier) record(email, status, errMsg, name string, events []EventDetail) {
	if n.DB == nil {
		return
	}
	ctx, _ := json.Marshal(map[string]interface{}{"name": name, "events": events})
	entry := model.MailLogModel{
		Recipient: email,
		Subject:   confirmationSubject,
		Status:    status,
		Error:     errMsg,
		Context:   datatypes.JSON(ctx),
	}
	if err := n.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARN] mail_log insert failed (%s → %s): %v", status, email, err)
	}
}
