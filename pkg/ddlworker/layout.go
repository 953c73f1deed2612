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

package ddlworker

// DroppedMark is the exact value a tombstoned replica node holds. A replica
// whose node carries it never appears in a cluster view.
const DroppedMark = "DROPPED"

// DefaultLogsToKeep is the retention policy written at bootstrap.
const DefaultLogsToKeep = 1000

// Coordination-store layout under the database root path.
func LogPath(storePath string) string        { return storePath + "/log" }
func CounterPath(storePath string) string    { return storePath + "/counter" }
func ReplicasPath(storePath string) string   { return storePath + "/replicas" }
func MetadataPath(storePath string) string   { return storePath + "/metadata" }
func MaxLogPtrPath(storePath string) string  { return storePath + "/max_log_ptr" }
func LogsToKeepPath(storePath string) string { return storePath + "/logs_to_keep" }

// ReplicaPath returns the registry node of a full replica name.
func ReplicaPath(storePath, fullReplicaName string) string {
	return ReplicasPath(storePath) + "/" + fullReplicaName
}

// LogPtrPath returns the applied-pointer node of a replica.
func LogPtrPath(replicaPath string) string {
	return replicaPath + "/log_ptr"
}

// EntryPath returns the log node of an entry id.
func EntryPath(storePath string, id uint32) string {
	return LogPath(storePath) + "/" + EntryName(id)
}

// CounterPrefix is the ephemeral-sequential prefix used to allocate ids.
func CounterPrefix(storePath string) string {
	return CounterPath(storePath) + "/cnt-"
}
