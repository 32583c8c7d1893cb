package store

import (
	"github.com/ccbrown/gqlbench/model"
)

// ReviewRepository serves a fixed set of reviews per episode.
type ReviewRepository struct {
	reviews map[model.Episode][]*model.Review
}

func NewReviewRepository() *ReviewRepository {
	r := &ReviewRepository{
		reviews: map[model.Episode][]*model.Review{},
	}
	for _, review := range seedReviews() {
		r.reviews[review.Episode] = append(r.reviews[review.Episode], review)
	}
	return r
}

// Reviews returns the reviews for an episode in seed order.
func (r *ReviewRepository) Reviews(episode model.Episode) []*model.Review {
	return r.reviews[episode]
}

func seedReviews() []*model.Review {
	return []*model.Review{
		{Episode: model.EpisodeNewHope, Stars: 5, Commentary: "A classic."},
		{Episode: model.EpisodeNewHope, Stars: 4},
		{Episode: model.EpisodeEmpire, Stars: 5, Commentary: "Best of the trilogy."},
		{Episode: model.EpisodeJedi, Stars: 3, Commentary: "Too many Ewoks."},
		{Episode: model.EpisodeJedi, Stars: 4, Commentary: "Great ending."},
	}
}
