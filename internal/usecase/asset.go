package usecase

import (
	"context"

	"github.com/totegamma/citydesk"
)

type AssetUsecase struct {
	source AssetSource
}

func NewAssetUsecase(source AssetSource) *AssetUsecase {
	return &AssetUsecase{source: source}
}

func (uc *AssetUsecase) Get(ctx context.Context, path string) (citydesk.Asset, error) {
	return uc.source.Fetch(ctx, path)
}
