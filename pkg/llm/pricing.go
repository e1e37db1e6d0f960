package llm

import "strings"

// modelPricing is USD per million tokens.
type modelPricing struct {
	InputPerM  float64
	OutputPerM float64
}

// pricingTable holds direct-call prices. Batch-tier calls are half price.
var pricingTable = map[string]modelPricing{
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
	"gemini-2.5-pro":        {InputPerM: 1.25, OutputPerM: 10.00},
}

// defaultPricing covers unrecognized models so cost metrics never silently
// read zero.
var defaultPricing = modelPricing{InputPerM: 0.30, OutputPerM: 2.50}

// callCost computes the dollar cost of one call.
func callCost(model string, inTokens, outTokens int, batchTier bool) float64 {
	p, ok := pricingTable[model]
	if !ok {
		// Versioned model names like gemini-2.5-flash-002 share base pricing.
		// Longest prefix wins so -flash-lite never falls back to -flash.
		best := ""
		for name, candidate := range pricingTable {
			if strings.HasPrefix(model, name) && len(name) > len(best) {
				p, ok, best = candidate, true, name
			}
		}
	}
	if !ok {
		p = defaultPricing
	}

	cost := float64(inTokens)/1e6*p.InputPerM + float64(outTokens)/1e6*p.OutputPerM
	if batchTier {
		cost /= 2
	}
	return cost
}
