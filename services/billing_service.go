package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BillingService drives the group's Stripe subscription: checkout
// sessions out, webhook events back in.
type BillingService struct {
	db            *gorm.DB
	log           *zap.Logger
	webhookSecret string
}

func NewBillingService(db *gorm.DB, logger *zap.Logger) *BillingService {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &BillingService{
		db:            db,
		log:           logger,
		webhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

// CreateCheckoutSession opens a Stripe subscription checkout for a plan
// price and returns the hosted URL to redirect the caregiver to.
func (b *BillingService) CreateCheckoutSession(groupID uint, priceID, successURL, cancelURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(fmt.Sprint(groupID)),
	}
	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

func (b *BillingService) GetSubscription(groupID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := b.db.Where("group_id = ?", groupID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// HandleWebhook verifies and applies a Stripe event. Unknown event types
// are acknowledged and ignored.
func (b *BillingService) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, b.webhookSecret)
	if err != nil {
		return err
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}
		return b.applyCheckout(&sess)
	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}
		return b.applySubscription(&sub)
	default:
		b.log.Debug("stripe webhook ignored", zap.String("type", string(event.Type)))
		return nil
	}
}

func (b *BillingService) applyCheckout(sess *stripe.CheckoutSession) error {
	groupID64, err := strconv.ParseUint(sess.ClientReferenceID, 10, 32)
	if err != nil {
		return fmt.Errorf("checkout session has no usable client_reference_id: %w", err)
	}
	groupID := uint(groupID64)

	sub := models.Subscription{GroupID: groupID}
	b.db.Where("group_id = ?", groupID).FirstOrInit(&sub)
	if sess.Customer != nil {
		sub.StripeCustomerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		sub.StripeSubID = sess.Subscription.ID
	}
	sub.Status = "active"
	return b.db.Save(&sub).Error
}

func (b *BillingService) applySubscription(stripeSub *stripe.Subscription) error {
	var sub models.Subscription
	err := b.db.Where("stripe_sub_id = ?", stripeSub.ID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		b.log.Warn("stripe webhook for unknown subscription", zap.String("subID", stripeSub.ID))
		return nil
	}
	if err != nil {
		return err
	}
	sub.Status = string(stripeSub.Status)
	sub.CurrentPeriodEnd = time.Unix(stripeSub.CurrentPeriodEnd, 0)
	if len(stripeSub.Items.Data) > 0 && stripeSub.Items.Data[0].Price != nil {
		sub.PriceID = stripeSub.Items.Data[0].Price.ID
	}
	return b.db.Save(&sub).Error
}
