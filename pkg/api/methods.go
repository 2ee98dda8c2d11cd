package api

import "github.com/storpool/storpool-go/pkg/schema"

// PeersList lists the network peers known to the beacon, keyed by peer ID.
func (a *Api) PeersList(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("peersList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// TasksList lists the currently running recovery and reallocation tasks.
func (a *Api) TasksList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("tasksList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// ServicesList reports all StorPool services and the overall cluster state.
func (a *Api) ServicesList(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("servicesList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// ServersListBlocked lists the servers together with the disks blocking
// them from joining the cluster.
func (a *Api) ServersListBlocked(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("serversListBlocked", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// AllPeersActiveRequests queries every peer for its status and active
// requests; query may be nil to query them all.
func (a *Api) AllPeersActiveRequests(query map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("allPeersActiveRequests", nil, query, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// ServersList lists all StorPool servers.
func (a *Api) ServersList(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("serversList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// ServerDisksList lists the disks on one server, keyed by disk ID.
func (a *Api) ServerDisksList(serverID int, opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("serverDisksList", args(serverID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// ServerDiskDescribe describes one disk on one server, object by object.
func (a *Api) ServerDiskDescribe(serverID, diskID int, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("serverDiskDescribe", args(serverID, diskID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// ClientsConfigDump reports the configuration generation of every client.
func (a *Api) ClientsConfigDump(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("clientsConfigDump", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// ClientConfigWait blocks until the client catches up with the current
// cluster configuration.
func (a *Api) ClientConfigWait(clientID int, opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("clientConfigWait", args(clientID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// ClientActiveRequests lists the in-flight requests on a client.
func (a *Api) ClientActiveRequests(clientID int, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("clientActiveRequests", args(clientID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// DisksList lists all disks, keyed by disk ID.
func (a *Api) DisksList(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("disksList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// DiskDescribe describes one disk, object by object.
func (a *Api) DiskDescribe(diskID int, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("diskDescribe", args(diskID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// DiskInfo reports a disk's per-volume usage summary.
func (a *Api) DiskInfo(diskID int, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("diskInfo", args(diskID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// DiskEject stops StorPool from using the disk without erasing it.
func (a *Api) DiskEject(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskEject", args(diskID), nil, opts...)
}

// DiskForget removes the disk from the cluster's records.
func (a *Api) DiskForget(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskForget", args(diskID), nil, opts...)
}

// DiskIgnore skips the disk during server startup.
func (a *Api) DiskIgnore(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskIgnore", args(diskID), nil, opts...)
}

// DiskSoftEject starts migrating the disk's data away so it can be
// safely removed.
func (a *Api) DiskSoftEject(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskSoftEject", args(diskID), nil, opts...)
}

// DiskSoftEjectPause pauses a running soft-eject.
func (a *Api) DiskSoftEjectPause(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskSoftEjectPause", args(diskID), nil, opts...)
}

// DiskSoftEjectCancel aborts a running soft-eject.
func (a *Api) DiskSoftEjectCancel(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskSoftEjectCancel", args(diskID), nil, opts...)
}

// DiskSetDescription stores a human-readable label on the disk.
func (a *Api) DiskSetDescription(diskID int, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskSetDesc", args(diskID), desc, opts...)
}

// DiskActiveRequests lists the in-flight requests on a disk.
func (a *Api) DiskActiveRequests(diskID int, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("diskActiveRequests", args(diskID), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// DiskScrubStart begins scrubbing the on-disk data.
func (a *Api) DiskScrubStart(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskScrubStart", args(diskID), nil, opts...)
}

// DiskScrubPause pauses a running scrub.
func (a *Api) DiskScrubPause(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskScrubPause", args(diskID), nil, opts...)
}

// DiskScrubContinue resumes a paused scrub.
func (a *Api) DiskScrubContinue(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskScrubContinue", args(diskID), nil, opts...)
}

// DiskRetrim re-runs TRIM over the disk's free space.
func (a *Api) DiskRetrim(diskID int, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("diskRetrim", args(diskID), nil, opts...)
}

// VolumesList lists the summaries of all volumes.
func (a *Api) VolumesList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumesList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumesStatus reports the operational state of every volume and
// snapshot, keyed by name.
func (a *Api) VolumesStatus(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumesStatus", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumesSpace estimates the space used by each volume.
func (a *Api) VolumesSpace(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumesSpace", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumeList returns the summary of a single volume.
func (a *Api) VolumeList(volumeName string, opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeList", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumeDescribe returns a volume with its full placement information.
func (a *Api) VolumeDescribe(volumeName string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeDescribe", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeInfo returns a volume's per-disk object distribution.
func (a *Api) VolumeInfo(volumeName string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeInfo", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeListSnapshots lists the parent snapshots of a volume.
func (a *Api) VolumeListSnapshots(volumeName string, opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeListSnapshots", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumeCreate creates a new volume.
func (a *Api) VolumeCreate(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeCreate", nil, desc, opts...)
}

// VolumeUpdate changes a volume's size, name, policy or template.
func (a *Api) VolumeUpdate(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeUpdate", args(volumeName), desc, opts...)
}

// VolumeFreeze converts a volume into a snapshot; desc may be nil.
func (a *Api) VolumeFreeze(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeFreeze", args(volumeName), desc, opts...)
}

// VolumeRebase moves a volume to a new parent in its snapshot chain.
func (a *Api) VolumeRebase(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeRebase", args(volumeName), desc, opts...)
}

// VolumeAbandonDisk gives up the volume's replicas on the given disk.
func (a *Api) VolumeAbandonDisk(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeAbandonDisk", args(volumeName), desc, opts...)
}

// VolumeDelete deletes a volume.
func (a *Api) VolumeDelete(volumeName string, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeDelete", args(volumeName), nil, opts...)
}

// VolumeBackup backs up a volume to a remote location.
func (a *Api) VolumeBackup(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeBackup", nil, desc, opts...)
}

// VolumesGroupBackup backs up a consistent group of volumes to a remote
// location.
func (a *Api) VolumesGroupBackup(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumesGroupBackup", nil, desc, opts...)
}

// VolumeMoveToRemote hands the volume over to a remote cluster.
func (a *Api) VolumeMoveToRemote(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeMoveToRemote", args(volumeName), desc, opts...)
}

// VolumeExport makes the volume attachable from another cluster.
func (a *Api) VolumeExport(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeExport", args(volumeName), desc, opts...)
}

// VolumeAcquire moves the volume from its current remote cluster to the
// local one; a no-op if it is already here.
func (a *Api) VolumeAcquire(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeAcquire", args(volumeName), desc, opts...)
}

// VolumeFromRemote creates a local volume on top of a remote snapshot.
func (a *Api) VolumeFromRemote(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeFromRemote", nil, desc, opts...)
}

// VolumeRevert discards the volume's current data and reverts it to one
// of its snapshots.
func (a *Api) VolumeRevert(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeRevert", args(volumeName), desc, opts...)
}

// SnapshotsList lists the summaries of all snapshots.
func (a *Api) SnapshotsList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("snapshotsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// SnapshotsSpace estimates the space that deleting each snapshot would
// free.
func (a *Api) SnapshotsSpace(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("snapshotsSpace", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// SnapshotList returns the summary of a single snapshot.
func (a *Api) SnapshotList(snapshotName string, opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("snapshotList", args(snapshotName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// SnapshotDescribe returns a snapshot with its full placement
// information.
func (a *Api) SnapshotDescribe(snapshotName string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("snapshotDescribe", args(snapshotName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// SnapshotInfo returns a snapshot's per-disk object distribution.
func (a *Api) SnapshotInfo(snapshotName string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("snapshotInfo", args(snapshotName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// SnapshotCreate takes a snapshot of a volume.
func (a *Api) SnapshotCreate(volumeName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotCreate", args(volumeName), desc, opts...)
}

// SnapshotUpdate changes a snapshot's name, binding or delete schedule.
func (a *Api) SnapshotUpdate(snapshotName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotUpdate", args(snapshotName), desc, opts...)
}

// SnapshotRebase moves a snapshot to a new parent in its chain.
func (a *Api) SnapshotRebase(snapshotName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotRebase", args(snapshotName), desc, opts...)
}

// SnapshotAbandonDisk gives up the snapshot's replicas on the given
// disk.
func (a *Api) SnapshotAbandonDisk(snapshotName string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotAbandonDisk", args(snapshotName), desc, opts...)
}

// SnapshotDelete deletes a snapshot.
func (a *Api) SnapshotDelete(snapshotName string, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotDelete", args(snapshotName), nil, opts...)
}

// SnapshotDeleteById deletes a snapshot by its global identifier.
func (a *Api) SnapshotDeleteById(globalVolumeID string, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotDeleteById", args(globalVolumeID), nil, opts...)
}

// SnapshotCreateGroup takes consistent snapshots of a group of volumes.
func (a *Api) SnapshotCreateGroup(spec map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotCreateGroup", nil, spec, opts...)
}

// SnapshotFromRemote copies a snapshot from a remote location.
func (a *Api) SnapshotFromRemote(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotFromRemote", nil, desc, opts...)
}

// SnapshotExport grants a remote location access to a local snapshot.
func (a *Api) SnapshotExport(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotExport", nil, desc, opts...)
}

// SnapshotUnexport revokes a remote location's access to a local
// snapshot.
func (a *Api) SnapshotUnexport(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotUnexport", nil, desc, opts...)
}

// ExportsList lists the snapshots exported to remote locations.
func (a *Api) ExportsList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("exportsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "exports"), nil
}

// VolumeExportsList lists the volumes exported to other clusters.
func (a *Api) VolumeExportsList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeExportsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "exports"), nil
}

// SnapshotsRemoteList lists the snapshots available at remote locations.
func (a *Api) SnapshotsRemoteList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("snapshotsRemoteList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "snapshots"), nil
}

// VolumesRemoteList lists the volumes available at remote locations.
func (a *Api) VolumesRemoteList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumesRemoteList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "volumes"), nil
}

// SnapshotsRemoteUnexport tells the remote location the given snapshots
// are no longer used from here.
func (a *Api) SnapshotsRemoteUnexport(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("snapshotsRemoteUnexport", nil, desc, opts...)
}

// AttachmentsList lists all volume and snapshot attachments.
func (a *Api) AttachmentsList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("attachmentsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumesReassign applies a batch of attach/detach changes without
// waiting for the clients to acknowledge them.
func (a *Api) VolumesReassign(reassign []interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumesReassign", nil, reassign, opts...)
}

// VolumesReassignWait applies a batch of attach/detach changes and waits
// for the clients to confirm them.
func (a *Api) VolumesReassignWait(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumesReassignWait", nil, desc, opts...)
}

// PlacementGroupsList lists all placement groups, keyed by name.
func (a *Api) PlacementGroupsList(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("placementGroupsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// PlacementGroupDescribe returns one placement group with its disks.
func (a *Api) PlacementGroupDescribe(name string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("placementGroupDescribe", args(name), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// PlacementGroupUpdate creates or updates a placement group.
func (a *Api) PlacementGroupUpdate(name string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("placementGroupUpdate", args(name), desc, opts...)
}

// PlacementGroupDelete deletes a placement group.
func (a *Api) PlacementGroupDelete(name string, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("placementGroupDelete", args(name), nil, opts...)
}

// FaultSetsList lists the configured fault sets, keyed by name.
func (a *Api) FaultSetsList(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("faultSetsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeTemplatesList lists all volume templates.
func (a *Api) VolumeTemplatesList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeTemplatesList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumeTemplatesStatus reports usage and capacity per template.
func (a *Api) VolumeTemplatesStatus(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeTemplatesStatus", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumeTemplateDescribe returns one volume template.
func (a *Api) VolumeTemplateDescribe(name string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeTemplateDescribe", args(name), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeTemplateCreate creates a volume template.
func (a *Api) VolumeTemplateCreate(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeTemplateCreate", nil, desc, opts...)
}

// VolumeTemplateUpdate updates a volume template.
func (a *Api) VolumeTemplateUpdate(name string, desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeTemplateUpdate", args(name), desc, opts...)
}

// VolumeTemplateDelete deletes a volume template.
func (a *Api) VolumeTemplateDelete(name string, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeTemplateDelete", args(name), nil, opts...)
}

// VolumeRelocatorStatus reports whether the relocator is running.
func (a *Api) VolumeRelocatorStatus(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeRelocatorStatus", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeRelocatorDisks estimates the total relocation work per disk.
func (a *Api) VolumeRelocatorDisks(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumeRelocatorDisks", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeRelocatorVolumeDisks estimates the relocation work per disk for
// one volume.
func (a *Api) VolumeRelocatorVolumeDisks(volumeName string, opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumeRelocatorVolumeDisks", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeRelocatorSnapshotDisks estimates the relocation work per disk
// for one snapshot.
func (a *Api) VolumeRelocatorSnapshotDisks(snapshotName string, opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumeRelocatorSnapshotDisks", args(snapshotName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeBalancerGetStatus reports the balancer's state.
func (a *Api) VolumeBalancerGetStatus(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerGetStatus", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeBalancerSetStatus starts, stops or commits a balancer run.
func (a *Api) VolumeBalancerSetStatus(cmd map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("volumeBalancerSetStatus", nil, cmd, opts...)
}

// VolumeBalancerVolumesStatus reports the balancer's view of every
// volume and snapshot.
func (a *Api) VolumeBalancerVolumesStatus(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerVolumesStatus", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// VolumeBalancerDisks estimates the total rebalancing work per disk.
func (a *Api) VolumeBalancerDisks(opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerDisks", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeBalancerVolumeDisks estimates the rebalancing work per disk for
// one volume.
func (a *Api) VolumeBalancerVolumeDisks(volumeName string, opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerVolumeDisks", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeBalancerSnapshotDisks estimates the rebalancing work per disk
// for one snapshot.
func (a *Api) VolumeBalancerSnapshotDisks(snapshotName string, opts ...CallOption) (map[string]*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerSnapshotDisks", args(snapshotName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceMap(res), nil
}

// VolumeBalancerVolumeDiskSets returns the disk sets the balancer
// computed for one volume.
func (a *Api) VolumeBalancerVolumeDiskSets(volumeName string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerVolumeDiskSets", args(volumeName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeBalancerSnapshotDiskSets returns the disk sets the balancer
// computed for one snapshot.
func (a *Api) VolumeBalancerSnapshotDiskSets(snapshotName string, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerSnapshotDiskSets", args(snapshotName), nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// VolumeBalancerGroups lists the balancer's allocation groups.
func (a *Api) VolumeBalancerGroups(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("volumeBalancerGroups", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstanceList(res), nil
}

// ISCSIConfig returns the cluster's iSCSI configuration.
func (a *Api) ISCSIConfig(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("iSCSIConfig", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// ISCSIConfigChange applies a batch of iSCSI configuration commands.
func (a *Api) ISCSIConfigChange(change map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("iSCSIConfigChange", nil, change, opts...)
}

// ISCSISessionsInfo queries the iSCSI target services for their active
// sessions; query may be nil.
func (a *Api) ISCSISessionsInfo(query map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("iSCSISessionsInfo", nil, query, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// ISCSInterfacesInfo queries the iSCSI target services for the state of
// their network interfaces; query may be nil.
func (a *Api) ISCSInterfacesInfo(query map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("iSCSInterfacesInfo", nil, query, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// LocationsList lists the registered remote locations.
func (a *Api) LocationsList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("locationsList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "locations"), nil
}

// LocationAdd registers a new remote location.
func (a *Api) LocationAdd(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("locationAdd", nil, desc, opts...)
}

// LocationRemove deregisters a remote location.
func (a *Api) LocationRemove(location string, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("locationRemove", nil, map[string]interface{}{"location": location}, opts...)
}

// LocationUpdate changes a remote location's transfer settings.
func (a *Api) LocationUpdate(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("locationUpdate", nil, desc, opts...)
}

// LocationRename renames a remote location.
func (a *Api) LocationRename(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("locationRename", nil, desc, opts...)
}

// ClustersList lists the registered remote clusters.
func (a *Api) ClustersList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("clustersList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "clusters"), nil
}

// ClusterAdd registers a new remote cluster.
func (a *Api) ClusterAdd(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("clusterAdd", nil, desc, opts...)
}

// ClusterRemove deregisters a remote cluster.
func (a *Api) ClusterRemove(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("clusterRemove", nil, desc, opts...)
}

// ClusterRename renames a remote cluster.
func (a *Api) ClusterRename(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("clusterRename", nil, desc, opts...)
}

// RemoteBridgesList lists the registered remote bridges.
func (a *Api) RemoteBridgesList(opts ...CallOption) ([]*schema.Instance, error) {
	res, err := a.invoke("remoteBridgesList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return unwrapList(res, "remoteBridges"), nil
}

// RemoteBridgeAdd registers a new remote bridge.
func (a *Api) RemoteBridgeAdd(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("remoteBridgeAdd", nil, desc, opts...)
}

// RemoteBridgeRemove deregisters a remote bridge.
func (a *Api) RemoteBridgeRemove(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("remoteBridgeRemove", nil, desc, opts...)
}

// MaintenanceList lists the nodes currently in maintenance.
func (a *Api) MaintenanceList(opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke("maintenanceList", nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

// MaintenanceSet puts a node into maintenance.
func (a *Api) MaintenanceSet(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("maintenanceSet", nil, desc, opts...)
}

// MaintenanceComplete takes a node out of maintenance.
func (a *Api) MaintenanceComplete(desc map[string]interface{}, opts ...CallOption) (*schema.Instance, error) {
	return a.okCall("maintenanceComplete", nil, desc, opts...)
}

// okCall performs a mutating call and returns its decoded envelope.
func (a *Api) okCall(name string, args []interface{}, jsonArg interface{}, opts ...CallOption) (*schema.Instance, error) {
	res, err := a.invoke(name, args, jsonArg, opts...)
	if err != nil {
		return nil, err
	}
	return asInstance(res), nil
}

func args(vs ...interface{}) []interface{} { return vs }

// jsonOrNil keeps a typed nil payload from being treated as a present
// one; invoke runs every payload through it before the required-JSON
// check.
func jsonOrNil(m interface{}) interface{} {
	switch t := m.(type) {
	case map[string]interface{}:
		if t == nil {
			return nil
		}
	case []interface{}:
		if t == nil {
			return nil
		}
	case nil:
		return nil
	}
	return m
}
