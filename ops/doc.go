// Package ops implements the derived tensor operations (§4.4): Contract,
// Trace, Identity, Conjugate, Exponential, and SVD/QR. Contract, QR and SVD
// hand the dense per-block arithmetic to a linalg.Provider; block
// gathering, scattering and accumulation read and write Core.Storage
// directly. Nothing here calls edgeop; there are no Expand/Shrink helpers.
package ops
