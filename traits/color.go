package traits

import (
	"fmt"
	"math"
)

// hueBand is the width, in degrees, of the hue range around a diet's centre.
const hueBand = 90 * 2

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText encodes the colour as #rrggbb.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Color derives a display colour from the strategy. Hue is the weight-average
// action hue mapped into the diet's band, lightness follows the mean weight
// and saturation the spread between the lightest and heaviest weight.
func (s Strategy) Color() RGB {
	var hueSum, weightSum float64
	var count int
	var domainMin, domainMax float64
	wMin, wMax := math.Inf(1), math.Inf(-1)

	for _, name := range s.chromosome.Names() {
		g, _ := s.chromosome.Gene(name)
		d := g.Domain()
		domainMin, domainMax = d.Min, d.Max
		v, active := g.Value()
		if !active {
			continue
		}
		hueSum += actionHues[name] * v
		weightSum += v
		count++
		wMin = math.Min(wMin, v)
		wMax = math.Max(wMax, v)
	}
	span := domainMax - domainMin
	if span <= 0 {
		span = 1
	}

	avgHue := 180.0
	if weightSum > 0 {
		avgHue = hueSum / weightSum
	}
	offset := (avgHue/360 - 0.5) * hueBand
	hue := math.Mod(math.Mod(s.diet.hueCenter()+offset, 360)+360, 360)

	avgWeight := 1.0
	if count > 0 {
		avgWeight = weightSum / float64(count)
	}
	lightness := 0.35 + 0.3*((avgWeight-domainMin)/span)

	spread := 0.0
	if count > 1 {
		spread = (wMax - wMin) / span
	}
	saturation := 0.55 + 0.4*spread

	return hslToRGB(hue/360, saturation, lightness)
}

// Color returns the centre colour of the diet's hue band.
func (d Diet) Color() RGB {
	return hslToRGB(d.hueCenter()/360, 0.7, 0.5)
}

// hslToRGB converts hue, saturation and lightness, each in [0, 1].
func hslToRGB(h, s, l float64) RGB {
	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h*12, 12)
		v := l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
		return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
	}
	return RGB{R: f(0), G: f(8), B: f(4)}
}
