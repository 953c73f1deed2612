// Copyright 2024 replidb Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package replicated

import (
	"sort"
	"strings"

	"github.com/pingcap/errors"

	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/ddlworker"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

// Cluster is a read-only topology snapshot: shards of replica hosts.
type Cluster struct {
	// Shards holds the host names of every shard, in shard name order.
	Shards [][]string `json:"shards"`
	// User and Password are the default credentials of the logical cluster.
	User     string `json:"user"`
	Password string `json:"password"`
	// TCPPort is the configured port of this process.
	TCPPort int `json:"tcp_port"`
}

const maxClusterRetries = 10

// GetCluster snapshots the replica registry under a child-version
// consistency check and groups live replicas into shards.
func (db *Database) GetCluster() (*Cluster, error) {
	var hosts []string
	var hostIDs []string
	success := false
	for iteration := 1; iteration <= maxClusterRetries && !success; iteration++ {
		var stat *coordination.Stat
		var err error
		hosts, stat, err = db.store.GetChildren(ddlworker.ReplicasPath(db.storePath))
		if err != nil {
			return nil, errors.Trace(err)
		}
		if len(hosts) == 0 {
			return nil, dbterror.ErrLogicalError.GenWithStackByArgs("no hosts found")
		}
		cver := stat.CVersion
		sort.Strings(hosts)

		futures := make([]<-chan coordination.TryGetResult, len(hosts))
		for i, host := range hosts {
			futures[i] = db.store.AsyncTryGet(ddlworker.ReplicaPath(db.storePath, host))
		}
		hostIDs = hostIDs[:0]
		success = true
		for i := range hosts {
			res := <-futures[i]
			if res.Err != nil || !res.Exists {
				success = false
			}
			hostIDs = append(hostIDs, res.Value)
		}

		_, stat, err = db.store.GetChildren(ddlworker.ReplicasPath(db.storePath))
		if err != nil {
			return nil, errors.Trace(err)
		}
		if stat.CVersion != cver {
			success = false
		}
	}
	if !success {
		return nil, dbterror.ErrAllConnectionTriesFailed.GenWithStackByArgs()
	}

	// The sort above clusters replicas of the same shard, so shards are the
	// lexicographic runs of the shard prefix.
	currentShard, _, err := ParseFullReplicaName(hosts[0])
	if err != nil {
		return nil, err
	}
	shards := [][]string{{}}
	for i, host := range hosts {
		id := hostIDs[i]
		if id == ddlworker.DroppedMark {
			continue
		}
		shard, _, err := ParseFullReplicaName(host)
		if err != nil {
			return nil, err
		}
		hostName := id
		if pos := strings.IndexByte(id, ':'); pos >= 0 {
			hostName = id[:pos]
		}
		hostName, err = objdef.UnescapeForFileName(hostName)
		if err != nil {
			return nil, err
		}
		if shard != currentShard {
			currentShard = shard
			if len(shards[len(shards)-1]) != 0 {
				shards = append(shards, []string{})
			}
		}
		shards[len(shards)-1] = append(shards[len(shards)-1], hostName)
	}
	if len(shards[len(shards)-1]) == 0 {
		shards = shards[:len(shards)-1]
	}

	return &Cluster{
		Shards:   shards,
		User:     "default",
		Password: "",
		TCPPort:  db.cfg.TCPPort,
	}, nil
}
