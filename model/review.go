package model

type Review struct {
	Episode    Episode
	Stars      int
	Commentary string
}
