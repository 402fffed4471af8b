package chaindp

// Partitioner is the capability treemtp threads through its postorder walk
// to solve each extracted sub-chain, matching spec.md's design note that
// the meta tree algorithm takes chain partitioning as an explicit argument
// rather than calling chaindp.Partition directly. Both Partition and
// PartitionVectorized satisfy this signature.
type Partitioner func(Input) (Result, error)
