package mailer

import (
	"clinic-site/internal/app/config"
	"crypto/tls"
	"net/smtp"
	"time"
)

// ImplicitTLSPort is the SMTPS port where TLS starts before the SMTP greeting.
const ImplicitTLSPort = 465

type SMTPClient struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Auth        smtp.Auth
	TLSConfig   *tls.Config
	DialTimeout time.Duration
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	var auth smtp.Auth
	if driverConfig.SMTP.Username != "" {
		auth = smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	}
	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Username: driverConfig.SMTP.Username,
		Password: driverConfig.SMTP.Password,
		Auth:     auth,
		TLSConfig: &tls.Config{
			ServerName:         driverConfig.SMTP.Host,
			InsecureSkipVerify: driverConfig.SMTP.InsecureSkipVerify,
		},
		DialTimeout: 15 * time.Second,
	}
}
