package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportService_Reply(t *testing.T) {
	svc := NewSupportService(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "order keyword",
			message: "Where is my ORDER?",
			want:    "To track your order, please visit the 'My Profile' section. You can find your recent orders and their status there.",
		},
		{
			name:    "track keyword",
			message: "how do I track my parcel",
			want:    "To track your order, please visit the 'My Profile' section. You can find your recent orders and their status there.",
		},
		{
			name:    "return keyword",
			message: "I want to return this notebook",
			want:    "We accept returns within 7 days of delivery for damaged items. Please contact us at 9414231059 for assistance.",
		},
		{
			name:    "refund keyword",
			message: "when will my Refund arrive",
			want:    "We accept returns within 7 days of delivery for damaged items. Please contact us at 9414231059 for assistance.",
		},
		{
			name:    "price keyword",
			message: "what is the price for bulk pens",
			want:    "We offer great wholesale prices! Use code 'SJSM10' for 10% off your order.",
		},
		{
			name:    "discount keyword",
			message: "any discount codes?",
			want:    "We offer great wholesale prices! Use code 'SJSM10' for 10% off your order.",
		},
		{
			name:    "fallback",
			message: "hello there",
			want:    defaultReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Reply(ctx, tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportService_ReplyHonoursContext(t *testing.T) {
	svc := NewSupportService(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Reply(ctx, "hello")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
