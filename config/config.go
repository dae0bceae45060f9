// Package config loads the deployment-tunable ambient defaults (speeds,
// reluctances, soft limits, the graph's home time zone) and produces
// the process-wide prototype RoutingRequest every assembled request is
// cloned from.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/transitgraph/streetcore/request"
	"github.com/transitgraph/streetcore/turncost"
)

// Defaults holds the ambient knobs a deployment tunes. Field values are
// read from a config file and/or STREETCORE_-prefixed environment
// variables; anything unset falls back to the built-in defaults below.
type Defaults struct {
	WalkSpeed float64 `mapstructure:"WALK_SPEED"`
	BikeSpeed float64 `mapstructure:"BIKE_SPEED"`
	CarSpeed  float64 `mapstructure:"CAR_SPEED"`

	WalkReluctance   float64 `mapstructure:"WALK_RELUCTANCE"`
	StairsReluctance float64 `mapstructure:"STAIRS_RELUCTANCE"`
	TurnReluctance   float64 `mapstructure:"TURN_RELUCTANCE"`
	WaitReluctance   float64 `mapstructure:"WAIT_RELUCTANCE"`

	BikeSwitchTime int64   `mapstructure:"BIKE_SWITCH_TIME"`
	BikeSwitchCost float64 `mapstructure:"BIKE_SWITCH_COST"`

	MaxWalkDistance     float64 `mapstructure:"MAX_WALK_DISTANCE"`
	SoftWalkLimiting    bool    `mapstructure:"SOFT_WALK_LIMITING"`
	SoftWalkPenalty     float64 `mapstructure:"SOFT_WALK_PENALTY"`
	SoftWalkOverageRate float64 `mapstructure:"SOFT_WALK_OVERAGE_RATE"`

	MaxPreTransitTime int64 `mapstructure:"MAX_PRE_TRANSIT_TIME"`

	MaxSlope float64 `mapstructure:"MAX_SLOPE"`

	BoardSlack    int `mapstructure:"BOARD_SLACK"`
	AlightSlack   int `mapstructure:"ALIGHT_SLACK"`
	TransferSlack int `mapstructure:"TRANSFER_SLACK"`

	// HomeTimeZone is the IANA name of the graph's home zone.
	HomeTimeZone string `mapstructure:"HOME_TIME_ZONE"`
}

// Overrides carries optional replacements for individual Defaults
// fields; a nil field leaves the loaded value alone. Callers build it
// with the ptr helpers (ptr.Float64 and friends) rather than taking
// addresses of temporaries by hand.
type Overrides struct {
	WalkSpeed        *float64
	BikeSpeed        *float64
	WalkReluctance   *float64
	StairsReluctance *float64
	MaxWalkDistance  *float64
	SoftWalkLimiting *bool
	HomeTimeZone     *string
}

// Apply overlays o onto d, field by field.
func (d *Defaults) Apply(o Overrides) {
	if o.WalkSpeed != nil {
		d.WalkSpeed = *o.WalkSpeed
	}
	if o.BikeSpeed != nil {
		d.BikeSpeed = *o.BikeSpeed
	}
	if o.WalkReluctance != nil {
		d.WalkReluctance = *o.WalkReluctance
	}
	if o.StairsReluctance != nil {
		d.StairsReluctance = *o.StairsReluctance
	}
	if o.MaxWalkDistance != nil {
		d.MaxWalkDistance = *o.MaxWalkDistance
	}
	if o.SoftWalkLimiting != nil {
		d.SoftWalkLimiting = *o.SoftWalkLimiting
	}
	if o.HomeTimeZone != nil {
		d.HomeTimeZone = *o.HomeTimeZone
	}
}

// builtin returns the compiled-in defaults, used when no config file or
// environment override is present.
func builtin() Defaults {
	return Defaults{
		WalkSpeed: 1.33, // ~4.8 km/h
		BikeSpeed: 5.0,  // ~18 km/h
		CarSpeed:  11.2, // ~40 km/h, fallback only; drivable edges carry their own

		WalkReluctance:   2.0,
		StairsReluctance: 2.0,
		TurnReluctance:   1.0,
		WaitReluctance:   1.0,

		BikeSwitchTime: 0,
		BikeSwitchCost: 0,

		MaxWalkDistance:     math.MaxFloat64,
		SoftWalkLimiting:    true,
		SoftWalkPenalty:     60,
		SoftWalkOverageRate: 5,

		MaxPreTransitTime: math.MaxInt32,

		MaxSlope: 0.0833, // ADA ramp maximum

		BoardSlack:    0,
		AlightSlack:   0,
		TransferSlack: 120,

		HomeTimeZone: "UTC",
	}
}

// Load reads defaults from the named config file (optional; pass ""
// for environment/built-ins only) merged with STREETCORE_-prefixed
// environment variables.
func Load(path string) (*Defaults, error) {
	v := viper.New()
	v.SetEnvPrefix("STREETCORE")
	v.AutomaticEnv()

	d := builtin()
	seedViperDefaults(v, d)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if d.BoardSlack+d.AlightSlack > d.TransferSlack {
		return nil, request.ErrSlackInvariant
	}

	return &d, nil
}

// seedViperDefaults registers d's values so env/file lookups fall back
// to them key by key.
func seedViperDefaults(v *viper.Viper, d Defaults) {
	v.SetDefault("WALK_SPEED", d.WalkSpeed)
	v.SetDefault("BIKE_SPEED", d.BikeSpeed)
	v.SetDefault("CAR_SPEED", d.CarSpeed)
	v.SetDefault("WALK_RELUCTANCE", d.WalkReluctance)
	v.SetDefault("STAIRS_RELUCTANCE", d.StairsReluctance)
	v.SetDefault("TURN_RELUCTANCE", d.TurnReluctance)
	v.SetDefault("WAIT_RELUCTANCE", d.WaitReluctance)
	v.SetDefault("BIKE_SWITCH_TIME", d.BikeSwitchTime)
	v.SetDefault("BIKE_SWITCH_COST", d.BikeSwitchCost)
	v.SetDefault("MAX_WALK_DISTANCE", d.MaxWalkDistance)
	v.SetDefault("SOFT_WALK_LIMITING", d.SoftWalkLimiting)
	v.SetDefault("SOFT_WALK_PENALTY", d.SoftWalkPenalty)
	v.SetDefault("SOFT_WALK_OVERAGE_RATE", d.SoftWalkOverageRate)
	v.SetDefault("MAX_PRE_TRANSIT_TIME", d.MaxPreTransitTime)
	v.SetDefault("MAX_SLOPE", d.MaxSlope)
	v.SetDefault("BOARD_SLACK", d.BoardSlack)
	v.SetDefault("ALIGHT_SLACK", d.AlightSlack)
	v.SetDefault("TRANSFER_SLACK", d.TransferSlack)
	v.SetDefault("HOME_TIME_ZONE", d.HomeTimeZone)
}

// HomeLocation resolves the configured home time zone name, falling
// back to UTC when the name is unknown to the zone database.
func (d *Defaults) HomeLocation() *time.Location {
	loc, err := time.LoadLocation(d.HomeTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Prototype builds the process-wide RoutingRequest every assembled
// request clones from. It is constructed once at startup and never
// mutated afterwards.
func (d *Defaults) Prototype() *request.RoutingRequest {
	return &request.RoutingRequest{
		Modes: request.DefaultModeSet(),

		WalkReluctance:        d.WalkReluctance,
		WaitReluctance:        d.WaitReluctance,
		WaitAtBeginningFactor: 1.0,
		StairsReluctance:      d.StairsReluctance,
		TurnReluctance:        d.TurnReluctance,

		WalkSpeed: d.WalkSpeed,
		BikeSpeed: d.BikeSpeed,
		CarSpeed:  d.CarSpeed,

		BikeSwitchTime: d.BikeSwitchTime,
		BikeSwitchCost: d.BikeSwitchCost,

		Optimize: request.OptimizeQuick,

		MaxSlope: d.MaxSlope,

		MaxWalkDistance:     d.MaxWalkDistance,
		SoftWalkLimiting:    d.SoftWalkLimiting,
		SoftWalkPenalty:     d.SoftWalkPenalty,
		SoftWalkOverageRate: d.SoftWalkOverageRate,

		MaxPreTransitTime:      d.MaxPreTransitTime,
		SoftPreTransitLimiting: true,
		PreTransitPenalty:      d.SoftWalkPenalty,
		PreTransitOverageRate:  d.SoftWalkOverageRate,

		WalkBoardCost: 600,
		BikeBoardCost: 600,

		BoardSlack:    d.BoardSlack,
		AlightSlack:   d.AlightSlack,
		TransferSlack: d.TransferSlack,

		MaxTransfers: 2,

		Locale: language.AmericanEnglish,

		PermitFootway: true,
		Accessibility: request.NeutralAccessibilityVector(),

		CostModel: turncost.NewDefaultCostModel(),
	}
}
