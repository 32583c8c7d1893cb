package model

type Episode int

const (
	EpisodeNewHope Episode = iota + 1
	EpisodeEmpire
	EpisodeJedi
)

func (e Episode) String() string {
	switch e {
	case EpisodeNewHope:
		return "NEWHOPE"
	case EpisodeEmpire:
		return "EMPIRE"
	case EpisodeJedi:
		return "JEDI"
	}
	return ""
}

type LengthUnit int

const (
	LengthUnitMeter LengthUnit = iota + 1
	LengthUnitFoot
)

func (u LengthUnit) String() string {
	switch u {
	case LengthUnitMeter:
		return "METER"
	case LengthUnitFoot:
		return "FOOT"
	}
	return ""
}
