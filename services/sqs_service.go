package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// QueueMessage is one received message together with the receipt handle
// needed to acknowledge (delete) it.
type QueueMessage struct {
	MessageID     string
	Body          string
	ReceiptHandle string
}

// MessageQueue is the durable channel between the match writers and the
// notification consumer. A received message stays hidden for the queue's
// visibility timeout; it reappears unless deleted in time.
type MessageQueue interface {
	Enqueue(ctx context.Context, body string) (string, error)
	Receive(ctx context.Context, maxMessages int32, waitSeconds int32) ([]QueueMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
}

type SQSService struct {
	Client   *sqs.Client
	QueueURL string
}

// InitializeSQSClient initializes the SQS client
func InitializeSQSClient() *sqs.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return sqs.NewFromConfig(cfg)
}

// Enqueue puts one message on the queue and returns its message id
func (qs *SQSService) Enqueue(ctx context.Context, body string) (string, error) {
	output, err := qs.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &qs.QueueURL,
		MessageBody: &body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to enqueue message: %w", err)
	}
	return aws.ToString(output.MessageId), nil
}

// Receive long-polls the queue for up to waitSeconds and returns at most
// maxMessages messages. An empty slice after the wait window is normal.
func (qs *SQSService) Receive(ctx context.Context, maxMessages int32, waitSeconds int32) ([]QueueMessage, error) {
	output, err := qs.Client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            &qs.QueueURL,
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]QueueMessage, 0, len(output.Messages))
	for _, msg := range output.Messages {
		messages = append(messages, QueueMessage{
			MessageID:     aws.ToString(msg.MessageId),
			Body:          aws.ToString(msg.Body),
			ReceiptHandle: aws.ToString(msg.ReceiptHandle),
		})
	}
	return messages, nil
}

// Delete acknowledges a received message so the queue stops redelivering it
func (qs *SQSService) Delete(ctx context.Context, receiptHandle string) error {
	_, err := qs.Client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &qs.QueueURL,
		ReceiptHandle: &receiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
