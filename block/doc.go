// Package block provides rectangular integer tiles and the decomposition of
// square matrices into grids of tiles.
//
// The block package provides:
//
//   - Block, a rows×cols int32 tile that owns its row-major storage.
//   - Split / Merge, converting a flat n×n matrix to a Grid of Blocks and back.
//     Edge tiles are ragged when n is not a multiple of the block size.
//   - Multiply, Add and AccumulateProduct, the block-level algebra used by the
//     multiply package.
//
// All errors are package-level sentinels; see errors.go.
package block
