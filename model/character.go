package model

// Character is implemented by *Human and *Droid.
type Character interface {
	CharacterId() string
	CharacterName() string
	FriendIds() []string
	Episodes() []Episode
}

type Human struct {
	Id        string
	Name      string
	Friends   []string
	AppearsIn []Episode

	// Height in meters.
	Height float64

	// Mass in kilograms. Zero if unknown.
	Mass float64

	Starships []string
}

func (h *Human) CharacterId() string   { return h.Id }
func (h *Human) CharacterName() string { return h.Name }
func (h *Human) FriendIds() []string   { return h.Friends }
func (h *Human) Episodes() []Episode   { return h.AppearsIn }

type Droid struct {
	Id              string
	Name            string
	Friends         []string
	AppearsIn       []Episode
	PrimaryFunction string
}

func (d *Droid) CharacterId() string   { return d.Id }
func (d *Droid) CharacterName() string { return d.Name }
func (d *Droid) FriendIds() []string   { return d.Friends }
func (d *Droid) Episodes() []Episode   { return d.AppearsIn }
