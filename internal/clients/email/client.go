package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/time/rate"
)

// Message is a fully-formed outbound email. The sender identity is fixed
// per client, not per message.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type Client struct {
	apiKey      string
	sender      string
	host        string
	rateLimiter *rate.Limiter
}

func NewClient(apiKey string, sender string) *Client {
	return &Client{apiKey: apiKey, sender: sender, host: "https://api.sendgrid.com"}
}

// SetHost overrides the SendGrid API host; tests point it at a local server.
func (c *Client) SetHost(host string) {
	c.host = host
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) Send(ctx context.Context, message Message) error {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", c.sender))
	m.Subject = message.Subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", message.To))
	m.AddPersonalizations(personalization)
	m.AddContent(mail.NewContent("text/html", message.HTML))

	request := sendgrid.GetRequest(c.apiKey, "/v3/mail/send", c.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}

	if response.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %v, body: %v", response.StatusCode, response.Body)
	}

	return nil
}
