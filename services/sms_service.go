package services

import (
	"context"
	"fmt"
	"os"

	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// SMSService sends caregiver text messages through SNS direct publish.
type SMSService struct {
	sns      *awssns.Client
	senderID string
	log      *zap.Logger
}

func NewSMSService(logger *zap.Logger) (*SMSService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SMSService{
		sns:      awssns.NewFromConfig(cfg),
		senderID: os.Getenv("SMS_SENDER_ID"),
		log:      logger,
	}, nil
}

func (s *SMSService) Send(phone, message string) error {
	input := &awssns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	}
	if s.senderID != "" {
		input.MessageAttributes["AWS.SNS.SMS.SenderID"] = snstypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}
	_, err := s.sns.Publish(context.TODO(), input)
	if err != nil {
		s.log.Warn("sms publish failed", zap.String("phone", phone), zap.Error(err))
	}
	return err
}

// SendDoseReminder texts a caregiver that a dose is due.
func (s *SMSService) SendDoseReminder(phone, elderName string, med models.Medication, clock string) error {
	msg := fmt.Sprintf("MyHealth Guide: %s is due for %s %s at %s.", elderName, med.Name, med.Dosage, clock)
	return s.Send(phone, msg)
}

// SendConflictAlert texts a caregiver about new schedule conflicts.
func (s *SMSService) SendConflictAlert(phone, elderName string, count int) error {
	msg := fmt.Sprintf("MyHealth Guide: %d medication schedule conflict(s) found for %s. Please review in the app.", count, elderName)
	return s.Send(phone, msg)
}
