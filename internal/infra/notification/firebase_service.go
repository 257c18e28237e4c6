package notification

import (
	"context"
	"log/slog"

	"manna/internal/domain/service"
	"manna/internal/errors"
	"manna/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
)

// MaxBatchSize is the multicast limit of Firebase Cloud Messaging.
const MaxBatchSize = 500

// ErrMessagingUnavailable is returned when Firebase messaging is not configured.
var ErrMessagingUnavailable = service.ErrMessagingUnavailable

type multicastSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// NewFirebaseService creates the push notification service backed by Firebase Cloud Messaging.
func NewFirebaseService(clients *firebase.Clients, logger *slog.Logger) service.NotificationService {
	s := &firebaseService{logger: logger}
	if clients.Messaging != nil {
		s.client = clients.Messaging
	}

	return s
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if s.client == nil {
		return ErrMessagingUnavailable
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to any number of device tokens,
// split into multicast requests of at most MaxBatchSize tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if s.client == nil {
		return 0, 0, nil, ErrMessagingUnavailable
	}

	invalidTokens = make([]string, 0)
	for start := 0; start < len(tokens); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(tokens))
		batch := tokens[start:end]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, batch[idx])
			}
		}
	}

	s.logger.Debug("Push batch sent",
		slog.Int("tokens", len(tokens)),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
		slog.Int("invalid", len(invalidTokens)))

	return successCount, failureCount, invalidTokens, nil
}
