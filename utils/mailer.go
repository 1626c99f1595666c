package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"backend/logger"
	"backend/nutrition"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

var sesClient *ses.Client

func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		logger.Fatal("AWS config load failed", zap.Error(err))
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
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
		logger.Error("SES send error", zap.Error(err))
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendWeeklyReportEmail summarizes a finished weekly report.
func SendWeeklyReportEmail(to, weekStart string, score nutrition.NutritionScore) error {
	subject := fmt.Sprintf("Your nutrition report for the week of %s", weekStart)

	var b strings.Builder
	fmt.Fprintf(&b, "Overall score: %.0f/100\n\n", score.Overall)
	fmt.Fprintf(&b, "Macronutrients: %.0f\n", score.Breakdown.Macronutrients)
	fmt.Fprintf(&b, "Micronutrients: %.0f\n", score.Breakdown.Micronutrients)
	fmt.Fprintf(&b, "Harmful substances: %.0f\n", score.Breakdown.HarmfulSubstances)
	if len(score.Recommendations) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, r := range score.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	b.WriteString("\nOpen the app for the full breakdown.")

	return sendEmail(to, subject, b.String())
}
