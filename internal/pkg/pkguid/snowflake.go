package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// maxNodeID matches the library default of 10 node bits.
const maxNodeID = 1<<10 - 1

// epochMillis is 2026-01-01T00:00:00Z.
const epochMillis = 1767225600000

var epochOnce sync.Once

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &nodeID); err != nil {
		return 0, err
	}

	return nodeID & maxNodeID, nil
}

// NewSnowflake constructs a Snowflake generator. A negative nodeID picks a
// random node; larger values are masked into the node range.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 {
		var err error
		if nodeID, err = generateRandomNodeID(); err != nil {
			return nil, err
		}
	}

	epochOnce.Do(func() { snowflake.Epoch = epochMillis })

	node, err := snowflake.NewNode(nodeID & maxNodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
