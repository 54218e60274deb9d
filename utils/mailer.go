package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitMailer must be called once from main before any email is sent.
func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return fmt.Errorf("mailer not initialized")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendCaregiverInvite mails an invitation code for joining a care group.
func SendCaregiverInvite(to, groupName, code string) error {
	subject := fmt.Sprintf("You've been invited to help care for the %s group", groupName)
	body := fmt.Sprintf(
		"You have been invited to join the care group %q on MyHealth Guide.\n\n"+
			"Use this invite code to accept: %s\n\n"+
			"The code expires in 7 days.", groupName, code)
	return sendEmail(to, subject, body)
}

// SendConflictAlertEmail notifies a caregiver about newly detected
// medication schedule conflicts.
func SendConflictAlertEmail(to, elderName string, count int) error {
	subject := fmt.Sprintf("Medication schedule review needed for %s", elderName)
	body := fmt.Sprintf(
		"The nightly medication check found %d schedule conflict(s) for %s.\n"+
			"Please open the app to review the flagged schedules.", count, elderName)
	return sendEmail(to, subject, body)
}
