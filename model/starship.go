package model

type Starship struct {
	Id   string
	Name string

	// Length in meters.
	Length float64
}
