package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keighl/postmark"

	"github.com/fixhive/fixhive/internal/domain/model"
)

const offerSubject = "New Service Request"

// postmarkSender is the slice of the Postmark client the gateway uses,
// kept as an interface so tests can capture outgoing mail.
type postmarkSender interface {
	SendEmail(email postmark.Email) (postmark.EmailResponse, error)
}

// Gateway delivers partner-facing notifications through Postmark.
type Gateway struct {
	client postmarkSender
	sender string
	logger *slog.Logger
}

// NewGateway creates a Postmark-backed notification gateway.
func NewGateway(serverToken, sender string, logger *slog.Logger) *Gateway {
	return &Gateway{
		client: postmark.NewClient(serverToken, ""),
		sender: sender,
		logger: logger,
	}
}

// NotifyOffer emails the partner about a freshly placed offer. The Postmark
// client has no context support; ctx is honored before the call.
func (g *Gateway) NotifyOffer(ctx context.Context, notice model.OfferNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := offerEmailBody(notice)
	_, err := g.client.SendEmail(postmark.Email{
		From:     g.sender,
		To:       notice.PartnerEmail,
		Subject:  offerSubject,
		HtmlBody: body,
		TextBody: body,
	})
	if err != nil {
		return fmt.Errorf("send offer notification: %w", err)
	}

	g.logger.Info("offer notification sent", slog.String("partner_email", notice.PartnerEmail))
	return nil
}

func offerEmailBody(n model.OfferNotice) string {
	return fmt.Sprintf(
		`<h3>New %s Service Request</h3>
<p><strong>Customer:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Scheduled Time:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<p>Please log in to your dashboard to accept or decline the job within 2 minutes.</p>`,
		n.ServiceType, n.CustomerName, n.CustomerEmail, n.ServiceTitle, n.TimeSlot, n.FullAddress,
	)
}
