package messaging

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"khadamat_hub/internal/events"
)

// SQSAPI is the slice of the SQS client the feed uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// RowChangedFeed forwards in-process RowChanged events to an SQS queue so
// out-of-process consumers (reporting, notifications) can follow the same
// push-invalidate contract. Delivery is best-effort: a send failure is
// logged and never fails the originating write.
type RowChangedFeed struct {
	sqs      SQSAPI
	queueURL string
}

func NewRowChangedFeed(sqsClient SQSAPI, queueURL string) *RowChangedFeed {
	return &RowChangedFeed{sqs: sqsClient, queueURL: queueURL}
}

// Attach subscribes the feed to the bus.
func (f *RowChangedFeed) Attach(bus *events.Bus) {
	bus.Subscribe(func(evt events.RowChanged) {
		f.forward(context.Background(), evt)
	})
}

func (f *RowChangedFeed) forward(ctx context.Context, evt events.RowChanged) {
	body, err := json.Marshal(evt)
	if err != nil {
		log.Printf("[events][feed] marshal failed table=%s err=%v", evt.Table, err)
		return
	}
	msg := string(body)

	input := &sqs.SendMessageInput{
		QueueUrl:    &f.queueURL,
		MessageBody: &msg,
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"table": {DataType: awsString("String"), StringValue: &evt.Table},
			"op":    {DataType: awsString("String"), StringValue: &evt.Op},
		},
	}
	if _, err := f.sqs.SendMessage(ctx, input); err != nil {
		log.Printf("[events][feed] send failed table=%s key=%s err=%v", evt.Table, evt.Key, err)
	}
}

func awsString(s string) *string { return &s }
