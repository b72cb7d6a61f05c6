package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amberwatch/amberwatch/internal/amber"
	"github.com/amberwatch/amberwatch/internal/db/models"
)

func kinds(alerts []Alert) []AlertKind {
	var out []AlertKind
	for _, a := range alerts {
		out = append(out, a.Kind)
	}

	return out
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		settings models.Settings
		sample   amber.PriceSample
		expected []AlertKind
	}{
		{
			name:     "high price and renewables fire",
			settings: models.Settings{HighPriceThreshold: 30, LowPriceThreshold: 10, RenewableThreshold: 50},
			sample:   amber.PriceSample{PerKwh: 35, Renewables: 60},
			expected: []AlertKind{AlertHighPrice, AlertRenewable},
		},
		{
			name:     "low price fires alone",
			settings: models.Settings{HighPriceThreshold: 30, LowPriceThreshold: 10, RenewableThreshold: 50},
			sample:   amber.PriceSample{PerKwh: 5, Renewables: 20},
			expected: []AlertKind{AlertLowPrice},
		},
		{
			name:     "nothing fires inside the band",
			settings: models.Settings{HighPriceThreshold: 30, LowPriceThreshold: 10, RenewableThreshold: 50},
			sample:   amber.PriceSample{PerKwh: 20, Renewables: 40},
			expected: nil,
		},
		{
			name:     "equal to threshold does not fire",
			settings: models.Settings{HighPriceThreshold: 30, LowPriceThreshold: 10, RenewableThreshold: 50},
			sample:   amber.PriceSample{PerKwh: 30, Renewables: 50},
			expected: nil,
		},
		{
			name: "inverted thresholds fire both price alerts",
			// low above high is accepted input, not rejected
			settings: models.Settings{HighPriceThreshold: 10, LowPriceThreshold: 30, RenewableThreshold: 100},
			sample:   amber.PriceSample{PerKwh: 20, Renewables: 0},
			expected: []AlertKind{AlertHighPrice, AlertLowPrice},
		},
		{
			name:     "all three fire",
			settings: models.Settings{HighPriceThreshold: 10, LowPriceThreshold: 30, RenewableThreshold: 50},
			sample:   amber.PriceSample{PerKwh: 20, Renewables: 80},
			expected: []AlertKind{AlertHighPrice, AlertLowPrice, AlertRenewable},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			alerts := Evaluate(&tc.settings, tc.sample)
			assert.Equal(t, tc.expected, kinds(alerts))
		})
	}
}

func TestEvaluate_AlertCarriesValueAndThreshold(t *testing.T) {
	s := models.Settings{HighPriceThreshold: 30, LowPriceThreshold: 10, RenewableThreshold: 50}

	alerts := Evaluate(&s, amber.PriceSample{PerKwh: 42.5, Renewables: 10})

	assert.Len(t, alerts, 1)
	assert.Equal(t, AlertHighPrice, alerts[0].Kind)
	assert.InDelta(t, 42.5, alerts[0].Value, 0.001)
	assert.InDelta(t, 30.0, alerts[0].Threshold, 0.001)
}

func TestAlertKind_Descriptors(t *testing.T) {
	assert.Equal(t, "above", AlertHighPrice.ThresholdDescriptor())
	assert.Equal(t, "below", AlertLowPrice.ThresholdDescriptor())
	assert.Equal(t, "above", AlertRenewable.ThresholdDescriptor())

	assert.Contains(t, AlertHighPrice.Descriptor(), "High Price")
	assert.Contains(t, AlertLowPrice.Descriptor(), "Low Price")
	assert.Contains(t, AlertRenewable.Descriptor(), "Renewables")
}

func TestAlert_Formatting(t *testing.T) {
	price := Alert{Kind: AlertHighPrice, Value: 35.126, Threshold: 30}
	assert.Equal(t, "35.13", price.FormattedValue())
	assert.Contains(t, price.Message(), "35.13¢/kWh")
	assert.Contains(t, price.Message(), "above your threshold of 30.00¢/kWh")

	renew := Alert{Kind: AlertRenewable, Value: 60.4, Threshold: 50}
	assert.Equal(t, "60", renew.FormattedValue())
	assert.Contains(t, renew.Message(), "60%")
	assert.Contains(t, renew.Message(), "50%")
}
