package pente

import "github.com/ChizhovVadim/GameSearch/pkg/eval"

// shapes are written for player 1 and also match player 2 and the reverse.
var shapes = []eval.Pattern{
	{Shape: "_XX", WeightIndex: 1}, {Shape: "XXX", WeightIndex: 2}, {Shape: "_XXX", WeightIndex: 3}, {Shape: "X_XX", WeightIndex: 3}, {Shape: "_X_X", WeightIndex: 4}, {Shape: "_XX_", WeightIndex: 5},
	{Shape: "_X_X_", WeightIndex: 5}, {Shape: "_X_XX", WeightIndex: 5}, {Shape: "_XX_X", WeightIndex: 5}, {Shape: "_XXX_", WeightIndex: 6}, {Shape: "_XXXX", WeightIndex: 7}, {Shape: "X_X_X", WeightIndex: 4},
	{Shape: "X_XXX", WeightIndex: 6}, {Shape: "XX_XX", WeightIndex: 7}, {Shape: "XXXXX", WeightIndex: 9}, {Shape: "_X_X_X", WeightIndex: 5}, {Shape: "_X_XX_", WeightIndex: 6}, {Shape: "_X_XXX", WeightIndex: 7},
	{Shape: "_XX_XX", WeightIndex: 7}, {Shape: "_XXX_X", WeightIndex: 7}, {Shape: "_XXXX_", WeightIndex: 8}, {Shape: "_XXXXX", WeightIndex: 9}, {Shape: "X_X_XX", WeightIndex: 5}, {Shape: "X_XX_X", WeightIndex: 5},
	{Shape: "X_XXXX", WeightIndex: 7}, {Shape: "XX_XXX", WeightIndex: 7}, {Shape: "XXXXXX", WeightIndex: 10}, {Shape: "_X_X_X_", WeightIndex: 5}, {Shape: "_X_X_XX", WeightIndex: 5}, {Shape: "_X_XX_X", WeightIndex: 6},
	{Shape: "_X_XXX_", WeightIndex: 7}, {Shape: "_X_XXXX", WeightIndex: 7}, {Shape: "_XX_X_X", WeightIndex: 6}, {Shape: "_XX_XX_", WeightIndex: 7}, {Shape: "_XX_XXX", WeightIndex: 7}, {Shape: "_XXX_XX", WeightIndex: 7},
	{Shape: "_XXXX_X", WeightIndex: 8}, {Shape: "_XXXXX_", WeightIndex: 9}, {Shape: "_XXXXXX", WeightIndex: 10}, {Shape: "X_X_X_X", WeightIndex: 5}, {Shape: "X_X_XXX", WeightIndex: 7}, {Shape: "X_XX_X_", WeightIndex: 6},
	{Shape: "X_XX_XX", WeightIndex: 7}, {Shape: "X_XXX_X", WeightIndex: 8}, {Shape: "X_XXXXX", WeightIndex: 9}, {Shape: "XX_X_XX", WeightIndex: 5}, {Shape: "XX_XXXX", WeightIndex: 7}, {Shape: "XXX_XXX", WeightIndex: 7},
	{Shape: "XXXXXXX", WeightIndex: 11}, {Shape: "_X_X_X_X", WeightIndex: 6}, {Shape: "_X_X_XX_", WeightIndex: 6}, {Shape: "_X_X_XXX", WeightIndex: 7}, {Shape: "_X_XX_XX", WeightIndex: 7}, {Shape: "_X_XXX_X", WeightIndex: 8},
	{Shape: "_X_XXXX_", WeightIndex: 8}, {Shape: "_X_XXXXX", WeightIndex: 9}, {Shape: "_XX_X_XX", WeightIndex: 6}, {Shape: "_XX_XX_X", WeightIndex: 7}, {Shape: "_XX_XXX_", WeightIndex: 7}, {Shape: "_XX_XXXX", WeightIndex: 7},
	{Shape: "_XXX_X_X", WeightIndex: 7}, {Shape: "_XXX_XX_", WeightIndex: 7}, {Shape: "_XXX_XXX", WeightIndex: 7}, {Shape: "_XXXX_X_", WeightIndex: 8}, {Shape: "_XXXX_XX", WeightIndex: 8}, {Shape: "_XXXXX_X", WeightIndex: 9},
	{Shape: "_XXXXXX_", WeightIndex: 10}, {Shape: "_XXXXXXX", WeightIndex: 11}, {Shape: "X_X_X_XX", WeightIndex: 6}, {Shape: "X_X_XX_X", WeightIndex: 6}, {Shape: "X_X_XXXX", WeightIndex: 7}, {Shape: "X_XX_XXX", WeightIndex: 7},
	{Shape: "X_XXX_XX", WeightIndex: 8}, {Shape: "X_XXXX_X", WeightIndex: 8}, {Shape: "X_XXXXXX", WeightIndex: 10}, {Shape: "XX_X_XXX", WeightIndex: 7}, {Shape: "XX_XX_XX", WeightIndex: 8}, {Shape: "XX_XXXXX", WeightIndex: 9},
	{Shape: "XXX_XXXX", WeightIndex: 7}, {Shape: "XXXXXXXX", WeightIndex: 11}, {Shape: "_X_X_X_X_", WeightIndex: 6}, {Shape: "_X_X_X_XX", WeightIndex: 6}, {Shape: "_X_X_XX_X", WeightIndex: 6}, {Shape: "_X_X_XXX_", WeightIndex: 7},
	{Shape: "_X_X_XXXX", WeightIndex: 7}, {Shape: "_X_XX_X_X", WeightIndex: 6}, {Shape: "_X_XX_XX_", WeightIndex: 7}, {Shape: "_X_XX_XXX", WeightIndex: 7}, {Shape: "_X_XXX_X_", WeightIndex: 8}, {Shape: "_X_XXX_XX", WeightIndex: 8},
	{Shape: "_X_XXXX_X", WeightIndex: 8}, {Shape: "_X_XXXXX_", WeightIndex: 9}, {Shape: "_X_XXXXXX", WeightIndex: 10}, {Shape: "_XX_X_X_X", WeightIndex: 6}, {Shape: "_XX_X_XX_", WeightIndex: 6}, {Shape: "_XX_X_XXX", WeightIndex: 7},
	{Shape: "_XX_XX_XX", WeightIndex: 8}, {Shape: "_XX_XXX_X", WeightIndex: 8}, {Shape: "_XX_XXXX_", WeightIndex: 8}, {Shape: "_XX_XXXXX", WeightIndex: 9}, {Shape: "_XXX_X_XX", WeightIndex: 7}, {Shape: "_XXX_XX_X", WeightIndex: 7},
	{Shape: "_XXX_XXX_", WeightIndex: 7}, {Shape: "_XXX_XXXX", WeightIndex: 7}, {Shape: "_XXXX_X_X", WeightIndex: 8}, {Shape: "_XXXX_XXX", WeightIndex: 8}, {Shape: "_XXXXX_XX", WeightIndex: 9}, {Shape: "_XXXXXX_X", WeightIndex: 10},
	{Shape: "_XXXXXXX_", WeightIndex: 11}, {Shape: "_XXXXXXXX", WeightIndex: 11}, {Shape: "X_X_X_X_X", WeightIndex: 6}, {Shape: "X_X_X_XXX", WeightIndex: 7}, {Shape: "X_X_XX_XX", WeightIndex: 7}, {Shape: "X_X_XXX_X", WeightIndex: 8},
	{Shape: "X_X_XXXXX", WeightIndex: 9}, {Shape: "X_XX_X_XX", WeightIndex: 6}, {Shape: "X_XX_XX_X", WeightIndex: 7}, {Shape: "X_XX_XXXX", WeightIndex: 8}, {Shape: "X_XXX_XXX", WeightIndex: 8}, {Shape: "X_XXXX_XX", WeightIndex: 8},
	{Shape: "X_XXXXX_X", WeightIndex: 9}, {Shape: "X_XXXXXXX", WeightIndex: 11}, {Shape: "XX_X_X_XX", WeightIndex: 6}, {Shape: "XX_X_XXXX", WeightIndex: 7}, {Shape: "XX_XX_XX_", WeightIndex: 8}, {Shape: "XX_XX_XXX", WeightIndex: 8},
	{Shape: "XX_XXX_XX", WeightIndex: 8}, {Shape: "XX_XXXXXX", WeightIndex: 10}, {Shape: "XXX_X_XXX", WeightIndex: 8}, {Shape: "XXX_XXXXX", WeightIndex: 9}, {Shape: "XXXX_XXXX", WeightIndex: 7}, {Shape: "XXXXXXXXX", WeightIndex: 11},
	{Shape: "_X_X_X_X_X", WeightIndex: 6}, {Shape: "_X_X_X_XX_", WeightIndex: 6}, {Shape: "_X_X_X_XXX", WeightIndex: 7}, {Shape: "_X_X_XX_X_", WeightIndex: 6}, {Shape: "_X_X_XX_XX", WeightIndex: 7}, {Shape: "_X_X_XXX_X", WeightIndex: 8},
	{Shape: "_X_X_XXXX_", WeightIndex: 8}, {Shape: "_X_X_XXXXX", WeightIndex: 9}, {Shape: "_X_XX_X_X_", WeightIndex: 6}, {Shape: "_X_XX_X_XX", WeightIndex: 6}, {Shape: "_X_XX_XX_X", WeightIndex: 7}, {Shape: "_X_XX_XXX_", WeightIndex: 7},
	{Shape: "_X_XX_XXXX", WeightIndex: 7}, {Shape: "_X_XXX_X_X", WeightIndex: 7}, {Shape: "_X_XXX_XX_", WeightIndex: 8}, {Shape: "_X_XXX_XXX", WeightIndex: 8}, {Shape: "_X_XXXX_X_", WeightIndex: 8}, {Shape: "_X_XXXX_XX", WeightIndex: 8},
	{Shape: "_X_XXXXX_X", WeightIndex: 9}, {Shape: "_X_XXXXXX_", WeightIndex: 10}, {Shape: "_X_XXXXXXX", WeightIndex: 11}, {Shape: "_XX_X_X_XX", WeightIndex: 6}, {Shape: "_XX_X_XX_X", WeightIndex: 6}, {Shape: "_XX_X_XXX_", WeightIndex: 7},
	{Shape: "_XX_X_XXXX", WeightIndex: 7}, {Shape: "_XX_XX_X_X", WeightIndex: 7}, {Shape: "_XX_XX_XX_", WeightIndex: 8}, {Shape: "_XX_XX_XXX", WeightIndex: 8}, {Shape: "_XX_XXX_XX", WeightIndex: 8}, {Shape: "_XX_XXXX_X", WeightIndex: 8},
	{Shape: "_XX_XXXXX_", WeightIndex: 9}, {Shape: "_XX_XXXXXX", WeightIndex: 10}, {Shape: "_XXX_X_X_X", WeightIndex: 7}, {Shape: "_XXX_X_XXX", WeightIndex: 8}, {Shape: "_XXX_XX_XX", WeightIndex: 8}, {Shape: "_XXX_XXX_X", WeightIndex: 8},
	{Shape: "_XXX_XXXX_", WeightIndex: 8}, {Shape: "_XXX_XXXXX", WeightIndex: 9}, {Shape: "_XXXX_X_XX", WeightIndex: 8}, {Shape: "_XXXX_XX_X", WeightIndex: 8}, {Shape: "_XXXX_XXXX", WeightIndex: 8}, {Shape: "_XXXXX_X_X", WeightIndex: 9},
	{Shape: "_XXXXX_XXX", WeightIndex: 9}, {Shape: "_XXXXXX_XX", WeightIndex: 10}, {Shape: "_XXXXXXX_X", WeightIndex: 11}, {Shape: "_XXXXXXXX_", WeightIndex: 11}, {Shape: "_XXXXXXXXX", WeightIndex: 11}, {Shape: "X_X_X_X_XX", WeightIndex: 6},
	{Shape: "X_X_X_XX_X", WeightIndex: 6}, {Shape: "X_X_X_XXXX", WeightIndex: 7}, {Shape: "X_X_XX_X_X", WeightIndex: 7}, {Shape: "X_X_XX_XXX", WeightIndex: 7}, {Shape: "X_X_XXX_XX", WeightIndex: 8}, {Shape: "X_X_XXXX_X", WeightIndex: 8},
	{Shape: "X_X_XXXXXX", WeightIndex: 9}, {Shape: "X_XX_X_XXX", WeightIndex: 7}, {Shape: "X_XX_XX_XX", WeightIndex: 8}, {Shape: "X_XX_XXX_X", WeightIndex: 8}, {Shape: "X_XX_XXXXX", WeightIndex: 9}, {Shape: "X_XXX_X_XX", WeightIndex: 8},
	{Shape: "X_XXX_XXXX", WeightIndex: 8}, {Shape: "X_XXXX_XXX", WeightIndex: 8}, {Shape: "X_XXXXX_XX", WeightIndex: 9}, {Shape: "X_XXXXXX_X", WeightIndex: 10}, {Shape: "X_XXXXXXXX", WeightIndex: 11}, {Shape: "XX_X_X_XX_", WeightIndex: 6},
	{Shape: "XX_X_X_XXX", WeightIndex: 7}, {Shape: "XX_X_XX_XX", WeightIndex: 7}, {Shape: "XX_X_XXXXX", WeightIndex: 9}, {Shape: "XX_XX_XXXX", WeightIndex: 8}, {Shape: "XX_XXX_XXX", WeightIndex: 8}, {Shape: "XX_XXXX_XX", WeightIndex: 8},
	{Shape: "XX_XXXXXXX", WeightIndex: 11}, {Shape: "XXX_X_XXX_", WeightIndex: 8}, {Shape: "XXX_X_XXXX", WeightIndex: 8}, {Shape: "XXX_XX_XXX", WeightIndex: 8}, {Shape: "XXX_XXXXX_", WeightIndex: 9}, {Shape: "XXX_XXXXXX", WeightIndex: 10},
}

var patterns = eval.NewPatterns(winRunLength, 3, shapes)
