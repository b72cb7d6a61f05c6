package monitor

import (
	"fmt"

	"github.com/amberwatch/amberwatch/internal/amber"
	"github.com/amberwatch/amberwatch/internal/db/models"
)

// AlertKind identifies which threshold fired.
type AlertKind string

const (
	// AlertHighPrice fires when the price exceeds the high threshold.
	AlertHighPrice AlertKind = "high_price"
	// AlertLowPrice fires when the price falls below the low threshold.
	AlertLowPrice AlertKind = "low_price"
	// AlertRenewable fires when the renewable share exceeds its threshold.
	AlertRenewable AlertKind = "renewable"
)

// Alert is one fired threshold with the observed value it fired on.
type Alert struct {
	Kind      AlertKind
	Value     float64
	Threshold float64
}

// Evaluate compares a fresh price sample against a subscriber's thresholds
// and returns every alert kind that fires this cycle. The three checks are
// independent: zero to three alerts per cycle. Inverted thresholds
// (low above high) are accepted input and may fire both price alerts at
// once. There is no hysteresis and no dedup against earlier cycles, every
// cycle re-evaluates from scratch.
func Evaluate(s *models.Settings, p amber.PriceSample) []Alert {
	var alerts []Alert

	if p.PerKwh > s.HighPriceThreshold {
		alerts = append(alerts, Alert{Kind: AlertHighPrice, Value: p.PerKwh, Threshold: s.HighPriceThreshold})
	}

	if p.PerKwh < s.LowPriceThreshold {
		alerts = append(alerts, Alert{Kind: AlertLowPrice, Value: p.PerKwh, Threshold: s.LowPriceThreshold})
	}

	if p.Renewables > s.RenewableThreshold {
		alerts = append(alerts, Alert{Kind: AlertRenewable, Value: p.Renewables, Threshold: s.RenewableThreshold})
	}

	return alerts
}

// Descriptor returns the human readable alert headline.
func (k AlertKind) Descriptor() string {
	switch k {
	case AlertHighPrice:
		return "High Price Alert ⚡"
	case AlertLowPrice:
		return "Low Price Alert 💰"
	case AlertRenewable:
		return "High Renewables Alert 🌱"
	}

	return string(k)
}

// ThresholdDescriptor returns the direction of the crossed threshold.
func (k AlertKind) ThresholdDescriptor() string {
	if k == AlertLowPrice {
		return "below"
	}

	return "above"
}

// FormattedValue renders the observed value the way the email template
// expects it: prices with two decimals, percentages without.
func (a Alert) FormattedValue() string {
	if a.Kind == AlertRenewable {
		return fmt.Sprintf("%.0f", a.Value)
	}

	return fmt.Sprintf("%.2f", a.Value)
}

// Message composes the alert email body.
func (a Alert) Message() string {
	switch a.Kind {
	case AlertHighPrice:
		return fmt.Sprintf(
			"The current price (%.2f¢/kWh) is above your threshold of %.2f¢/kWh. You may want to reduce your energy usage.",
			a.Value, a.Threshold)
	case AlertLowPrice:
		return fmt.Sprintf(
			"The current price (%.2f¢/kWh) is below your threshold of %.2f¢/kWh. This might be a good time to use energy-intensive appliances.",
			a.Value, a.Threshold)
	case AlertRenewable:
		return fmt.Sprintf(
			"The current renewable percentage (%.0f%%) is above your threshold of %g%%. This is a great time to use electricity!",
			a.Value, a.Threshold)
	}

	return ""
}
