// Package service exposes the dateformat compiler over NATS request-reply.
// One Service instance subscribes to the parse, format and convert subjects
// and answers each request from a shared compiled-spec cache.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wehubfusion/Daedalus/pkg/dateformat"
	svcerrors "github.com/wehubfusion/Daedalus/pkg/errors"
	"github.com/wehubfusion/Daedalus/pkg/processors/dateformatter"
)

// Subjects the service answers on.
const (
	SubjectParse   = "dateformat.parse"
	SubjectFormat  = "dateformat.format"
	SubjectConvert = "dateformat.convert"
)

// Service answers dateformat requests over NATS request-reply.
type Service struct {
	conn          *nats.Conn
	executor      *dateformatter.Executor
	logger        *zap.Logger
	tracer        trace.Tracer
	reportErrors  bool
	subscriptions []*nats.Subscription
}

// NewService creates a service on an established NATS connection. The
// connection must already be connected. reportErrors enables Sentry
// capture of failed requests; Sentry must then be initialized by the host
// program.
func NewService(conn *nats.Conn, logger *zap.Logger, reportErrors bool) (*Service, error) {
	if conn == nil {
		return nil, errors.New("connection cannot be nil")
	}
	if !conn.IsConnected() {
		return nil, svcerrors.ErrNotConnected
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Service{
		conn:         conn,
		executor:     dateformatter.NewExecutor(),
		logger:       logger,
		tracer:       otel.Tracer("daedalus/service"),
		reportErrors: reportErrors,
	}, nil
}

// Start subscribes to the service subjects. It returns immediately; replies
// are served on the NATS client's delivery goroutines until Stop or
// connection close.
func (s *Service) Start(ctx context.Context) error {
	for _, subject := range []string{SubjectParse, SubjectFormat, SubjectConvert} {
		subject := subject
		sub, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
			s.serve(ctx, subject, msg)
		})
		if err != nil {
			return fmt.Errorf("%w: %s: %v", svcerrors.ErrSubscriptionFailed, subject, err)
		}
		s.subscriptions = append(s.subscriptions, sub)
	}
	s.logger.Info("dateformat service started",
		zap.Strings("subjects", []string{SubjectParse, SubjectFormat, SubjectConvert}))
	return nil
}

// Stop drains the service subscriptions.
func (s *Service) Stop() error {
	var firstErr error
	for _, sub := range s.subscriptions {
		if err := sub.Drain(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.subscriptions = nil
	s.logger.Info("dateformat service stopped")
	return firstErr
}

func (s *Service) serve(ctx context.Context, subject string, msg *nats.Msg) {
	ctx, span := s.tracer.Start(ctx, "dateformat.request",
		trace.WithAttributes(attribute.String("messaging.subject", subject)))
	defer span.End()

	resp := s.dispatch(subject, msg.Data)

	if resp.Error != nil {
		span.SetStatus(codes.Error, resp.Error.Message)
		s.logger.Warn("request failed",
			zap.String("subject", subject),
			zap.String("correlation_id", resp.CorrelationID),
			zap.String("code", resp.Error.Code),
			zap.String("error", resp.Error.Message))
		if s.reportErrors {
			sentry.CaptureMessage(fmt.Sprintf("dateformat %s: [%s] %s",
				subject, resp.Error.Code, resp.Error.Message))
		}
	} else {
		span.SetStatus(codes.Ok, "")
		s.logger.Debug("request served",
			zap.String("subject", subject),
			zap.String("correlation_id", resp.CorrelationID))
	}

	data, err := resp.ToBytes()
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		return
	}
	if err := msg.Respond(data); err != nil {
		s.logger.Error("failed to respond", zap.Error(err))
	}
}

// dispatch decodes a request and runs the operation the subject selects.
// It never returns nil, so every request gets a reply.
func (s *Service) dispatch(subject string, data []byte) *Response {
	req, err := RequestFromBytes(data)
	if err != nil {
		return errorResponse(uuid.NewString(), "INVALID_REQUEST",
			fmt.Errorf("%w: %v", svcerrors.ErrInvalidRequest, err))
	}
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}

	switch subject {
	case SubjectParse:
		if req.Spec == "" {
			return errorResponse(req.CorrelationID, "INVALID_REQUEST",
				fmt.Errorf("%w: spec is required", svcerrors.ErrInvalidRequest))
		}
		value, err := s.executor.Parse(req.Spec, req.Is24Hour, req.Input)
		if err != nil {
			return errorResponse(req.CorrelationID, classify(err), err)
		}
		resp := newResponse(req.CorrelationID)
		resp.Date = &value
		return resp

	case SubjectFormat:
		if req.Spec == "" || req.Date == nil {
			return errorResponse(req.CorrelationID, "INVALID_REQUEST",
				fmt.Errorf("%w: spec and date are required", svcerrors.ErrInvalidRequest))
		}
		result, err := s.executor.Format(req.Spec, req.Is24Hour, *req.Date)
		if err != nil {
			return errorResponse(req.CorrelationID, classify(err), err)
		}
		resp := newResponse(req.CorrelationID)
		resp.Result = result
		return resp

	case SubjectConvert:
		if req.InSpec == "" || req.OutSpec == "" {
			return errorResponse(req.CorrelationID, "INVALID_REQUEST",
				fmt.Errorf("%w: inSpec and outSpec are required", svcerrors.ErrInvalidRequest))
		}
		result, err := s.executor.Convert(req.InSpec, req.OutSpec, req.Is24Hour, req.Input)
		if err != nil {
			return errorResponse(req.CorrelationID, classify(err), err)
		}
		resp := newResponse(req.CorrelationID)
		resp.Result = result
		return resp

	default:
		return errorResponse(req.CorrelationID, "INVALID_REQUEST",
			fmt.Errorf("%w: %s", svcerrors.ErrInvalidSubject, subject))
	}
}

// classify maps dateformat error types onto response error codes.
func classify(err error) string {
	var specErr *dateformat.SpecError
	var parseErr *dateformat.ParseError
	var formatErr *dateformat.FormatError
	switch {
	case errors.As(err, &specErr):
		return "SPEC_ERROR"
	case errors.As(err, &parseErr):
		return "PARSE_ERROR"
	case errors.As(err, &formatErr):
		return "FORMAT_ERROR"
	default:
		return "INVALID_REQUEST"
	}
}
