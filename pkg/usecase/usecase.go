package usecase

import (
	"github.com/secmon-lab/indicator/pkg/domain/model/config"
)

type UseCases struct {
	indicators *config.IndicatorSet
	Render     *RenderUseCase
}

type Option func(*UseCases)

func New(indicators *config.IndicatorSet, opts ...Option) *UseCases {
	if indicators == nil {
		indicators = &config.IndicatorSet{}
	}

	uc := &UseCases{
		indicators: indicators,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Render = NewRenderUseCase(uc.indicators)

	return uc
}
