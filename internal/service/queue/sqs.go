package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/mailer"
)

type MessageType string

const (
	MessageTypeMail MessageType = "MAIL"
)

type Message struct {
	Type      MessageType    `json:"type"`
	Mail      mailer.Message `json:"mail"`
	Timestamp time.Time      `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// SQSAPI is the subset of *sqs.Client used here.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client       SQSAPI
	mailQueueURL string
}

func NewSQSService(client SQSAPI, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:       client,
		mailQueueURL: config.MailQueueURL,
	}
}

func (s *SQSService) MailQueueURL() string {
	return s.mailQueueURL
}

func (s *SQSService) SendMailMessage(ctx context.Context, mail mailer.Message) error {
	msg := Message{
		Type:      MessageTypeMail,
		Mail:      mail,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.mailQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// ReceiveMessages long-polls queueURL. A body that does not decode is
// returned with an empty Type so the caller can log and drop it.
func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]ReceivedMessage, 0, len(output.Messages))
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &message); err != nil {
			message = Message{}
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
