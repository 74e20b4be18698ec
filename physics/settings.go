package physics

// Tuning constants for the continuous-collision step.

// NoImpact is the sentinel returned by TimeOfImpact when two bodies can
// never touch under their current velocities.
const NoImpact = -1.0

// contactSettleEpsilon is subtracted from the settle time of an
// immediate (t = 0) contact so the re-simulation window for the pair is
// never zero-length.
const contactSettleEpsilon = 1e-2

// maxResolveIterations bounds the resolution loop of a single tick. Two
// bodies trading zero-time contacts can otherwise churn the candidate
// queue forever; exceeding the bound stops resolution for the tick and
// logs a diagnostic.
const maxResolveIterations = 10000
