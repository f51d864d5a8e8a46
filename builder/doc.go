// Package builder generates deterministic WDM test topologies.
//
// Constructors (Ring, Path, Star, Wheel, Complete, Grid, RandomSparse) emit
// nodes and links into any Target, usually an *rsa.Session. They are composed
// with Build and configured through functional options:
//
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     AlphanumericIDFn, HexIDFn, SymbolNumberIDFn.
//   - Link-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//   - WithSeed / WithRand for reproducible stochastic output.
//
// Guarantees:
//
//   - Same options, seed and constructor order produce the same topology.
//   - Option constructors panic on meaningless values; constructors never
//     panic and return errors wrapping the package sentinels.
//   - Re-running a constructor on the same target re-adds the same links,
//     which a Target is expected to treat as weight updates.
package builder
