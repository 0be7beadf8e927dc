package mailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/keighl/postmark"

	"github.com/fixhive/fixhive/internal/domain/model"
)

type senderStub struct {
	sent []postmark.Email
	err  error
}

func (s *senderStub) SendEmail(email postmark.Email) (postmark.EmailResponse, error) {
	s.sent = append(s.sent, email)
	return postmark.EmailResponse{}, s.err
}

func newTestGateway(sender postmarkSender) *Gateway {
	return &Gateway{
		client: sender,
		sender: "no-reply@fixhive.local",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func sampleNotice() model.OfferNotice {
	return model.OfferNotice{
		PartnerEmail:  "partner@example.com",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		ServiceTitle:  "Deep Cleaning",
		ServiceType:   "deep cleaning",
		TimeSlot:      "10:00-12:00",
		FullAddress:   "12 Main St",
	}
}

func TestNotifyOfferSendsEmail(t *testing.T) {
	stub := &senderStub{}
	gateway := newTestGateway(stub)

	if err := gateway.NotifyOffer(context.Background(), sampleNotice()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(stub.sent))
	}

	email := stub.sent[0]
	if email.To != "partner@example.com" {
		t.Fatalf("unexpected recipient %s", email.To)
	}
	if email.From != "no-reply@fixhive.local" {
		t.Fatalf("unexpected sender %s", email.From)
	}
	if email.Subject != "New Service Request" {
		t.Fatalf("unexpected subject %q", email.Subject)
	}
	if email.HtmlBody != email.TextBody {
		t.Fatal("expected matching html and text bodies")
	}
}

func TestNotifyOfferPropagatesSendError(t *testing.T) {
	stub := &senderStub{err: errors.New("postmark down")}
	gateway := newTestGateway(stub)

	if err := gateway.NotifyOffer(context.Background(), sampleNotice()); err == nil {
		t.Fatal("expected error")
	}
}

func TestNotifyOfferHonorsContext(t *testing.T) {
	stub := &senderStub{}
	gateway := newTestGateway(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := gateway.NotifyOffer(ctx, sampleNotice()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if len(stub.sent) != 0 {
		t.Fatal("no email expected after cancellation")
	}
}

func TestOfferEmailBodyContents(t *testing.T) {
	body := offerEmailBody(sampleNotice())

	for _, fragment := range []string{
		"New deep cleaning Service Request",
		"Alice",
		"alice@example.com",
		"Deep Cleaning",
		"10:00-12:00",
		"12 Main St",
		"within 2 minutes",
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("body missing %q:\n%s", fragment, body)
		}
	}
}
