package service

import (
	"context"
	"strings"
	"time"
)

const defaultReply = "Thanks for your message! Our support team will get back to you shortly."

// SupportService produces the canned auto-replies for the support widget.
// Replies are delivered after a fixed delay to mimic an agent typing; there
// is no ordering guarantee beyond "after the user's message".
type SupportService struct {
	replyDelay time.Duration
}

// NewSupportService creates a SupportService with the given reply delay.
func NewSupportService(replyDelay time.Duration) *SupportService {
	return &SupportService{replyDelay: replyDelay}
}

// Reply returns the canned response for the message after the configured
// delay, or early if the context is cancelled.
func (s *SupportService) Reply(ctx context.Context, message string) (string, error) {
	if s.replyDelay > 0 {
		select {
		case <-time.After(s.replyDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "order") || strings.Contains(lower, "track"):
		return "To track your order, please visit the 'My Profile' section. You can find your recent orders and their status there.", nil
	case strings.Contains(lower, "return") || strings.Contains(lower, "refund"):
		return "We accept returns within 7 days of delivery for damaged items. Please contact us at 9414231059 for assistance.", nil
	case strings.Contains(lower, "price") || strings.Contains(lower, "discount"):
		return "We offer great wholesale prices! Use code 'SJSM10' for 10% off your order.", nil
	default:
		return defaultReply, nil
	}
}
