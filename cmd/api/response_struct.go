package main

import "github.com/Vilis322/roomsizer"

type RequestData struct {
	// room dimensions, all in the same unit as the roll
	Room roomData `json:"room"`
	// roll dimensions
	RollWidth  float64 `json:"rollWidth"`
	RollLength float64 `json:"rollLength"`
	// extra length every strip gets for pattern matching
	DropAllowance float64 `json:"dropAllowance"`
	// multiplier on the strip count before rounding up to rolls;
	// left out it means no extra, an explicit value below 1 is rejected
	ExtraFactor *float64 `json:"extraFactor"`
	// windows and doors that spare strips
	Openings []openingData `json:"openings"`
	// when true the response carries the strip plan as svg
	Plan bool `json:"plan"`
	// will render "wxh" dimensions pair on every strip of the plan
	ShowDim bool `json:"showDim"`
}

type roomData struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

type openingData struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// window or door; empty means window
	Kind string `json:"kind"`
}

type ResponseData struct {
	Success     bool    `json:"success"`
	RollsNeeded int     `json:"rollsNeeded"`
	WallArea    float64 `json:"wallArea"`
	NetWallArea float64 `json:"netWallArea"`
	Perimeter   float64 `json:"perimeter"`
	// full calculation breakdown
	Report *roomsizer.Report `json:"report,omitempty"`
	// strip plan svg, only when asked for
	Plan string `json:"plan,omitempty"`
}

type errorData struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
