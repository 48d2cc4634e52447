package profile

import (
	"context"
	"errors"
	"log"
	"maps"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	platformotel "github.com/louisbranch/onboard/internal/platform/otel"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// Result message keys.
const (
	MessageCreated     = "submit.success"
	MessageRejected    = "submit.failed"
	MessageUnavailable = "submit.unavailable"
)

// Writer creates profile records in a backend and returns their IDs.
type Writer interface {
	CreateAgentProfile(ctx context.Context, p *AgentProfile) (string, error)
	CreateClientProfile(ctx context.Context, p *ClientProfile) (string, error)
}

// RejectedError reports a backend that understood the request and refused
// it. Fields maps draft fields to the backend's explanation.
type RejectedError struct {
	Message string
	Fields  map[string]string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "profile rejected"
	}
	return "profile rejected: " + e.Message
}

// Gateway turns a Writer into the wizard submission boundary: one write
// attempt per submission, every failure mapped to an unsuccessful Result.
type Gateway struct {
	writer    Writer
	sanitizer *Sanitizer
	tracer    trace.Tracer
}

// NewGateway builds a gateway over writer.
func NewGateway(writer Writer) *Gateway {
	return &Gateway{
		writer:    writer,
		sanitizer: NewSanitizer(),
		tracer:    platformotel.Tracer("github.com/louisbranch/onboard/internal/services/web/profile"),
	}
}

// Agent returns the submission gateway for the agent wizard.
func (g *Gateway) Agent() wizard.Gateway[*AgentProfile] {
	return wizard.GatewayFunc[*AgentProfile](func(ctx context.Context, p *AgentProfile) wizard.Result {
		return g.submit(ctx, KindAgent, func(ctx context.Context) (string, error) {
			g.sanitizer.Agent(p)
			return g.writer.CreateAgentProfile(ctx, p)
		})
	})
}

// Client returns the submission gateway for the client wizard.
func (g *Gateway) Client() wizard.Gateway[*ClientProfile] {
	return wizard.GatewayFunc[*ClientProfile](func(ctx context.Context, p *ClientProfile) wizard.Result {
		return g.submit(ctx, KindClient, func(ctx context.Context) (string, error) {
			g.sanitizer.Client(p)
			return g.writer.CreateClientProfile(ctx, p)
		})
	})
}

func (g *Gateway) submit(ctx context.Context, kind Kind, write func(context.Context) (string, error)) wizard.Result {
	ctx, span := g.tracer.Start(ctx, "profile.submit", trace.WithAttributes(attribute.String("profile.kind", kind.String())))
	defer span.End()

	if g.writer == nil {
		span.SetStatus(codes.Error, "no writer")
		return wizard.Result{Message: MessageUnavailable}
	}
	id, err := write(ctx)
	if err == nil {
		span.SetAttributes(attribute.String("profile.id", id))
		return wizard.Result{Success: true, Message: MessageCreated, ID: id}
	}

	var rejected *RejectedError
	if errors.As(err, &rejected) {
		span.SetStatus(codes.Error, "rejected")
		log.Printf("profile submission rejected kind=%s err=%v", kind, err)
		message := rejected.Message
		if message == "" {
			message = MessageRejected
		}
		return wizard.Result{Message: message, Errors: maps.Clone(rejected.Fields)}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, "write failed")
	log.Printf("profile submission failed kind=%s err=%v", kind, err)
	return wizard.Result{Message: MessageUnavailable}
}
