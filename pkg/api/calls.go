package api

import "github.com/storpool/storpool-go/pkg/schema"

// The call registry. Each entry pins down one management API operation:
// the query template, its path parameters, the request payload
// descriptor and the response descriptor.
func init() {
	register(
		// Peers, tasks and services.
		&call{name: "peersList", method: "GET", query: "NetworkPeersList",
			returns: schema.MapOf(PeerId, PeerDesc)},
		&call{name: "tasksList", method: "GET", query: "TasksList",
			returns: schema.ListOf(Task)},
		&call{name: "servicesList", method: "GET", query: "ServicesList",
			returns: ClusterStatus},
		&call{name: "serversListBlocked", method: "GET", query: "ServersListBlocked",
			returns: ClusterStatus},
		&call{name: "allPeersActiveRequests", method: "GET", query: "AllPeersActiveRequests",
			json: AllPeersActiveRequestsQuery, jsonOptional: true,
			returns: AllPeersActiveRequests},

		// Servers.
		&call{name: "serversList", method: "GET", query: "ServersList",
			returns: ClusterStatus},
		&call{name: "serverDisksList", method: "GET", query: "ServerDisksList/{serverId}",
			params:  []param{{"serverId", ServerId}},
			returns: schema.MapOf(DiskId, DiskSummary)},
		&call{name: "serverDiskDescribe", method: "GET", query: "ServerDiskDescribe/{serverId}/{diskId}",
			params:  []param{{"serverId", ServerId}, {"diskId", DiskId}},
			returns: Disk},

		// Clients.
		&call{name: "clientsConfigDump", method: "GET", query: "ClientsConfigDump",
			returns: schema.ListOf(ClientConfigStatus)},
		&call{name: "clientConfigWait", method: "GET", query: "ClientConfigWait/{clientId}",
			params:  []param{{"clientId", ClientId}},
			returns: schema.ListOf(ClientConfigStatus)},
		&call{name: "clientActiveRequests", method: "GET", query: "ClientActiveRequests/{clientId}",
			params:  []param{{"clientId", ClientId}},
			returns: ClientActiveRequests},
	)

	register(
		// Disks.
		&call{name: "disksList", method: "GET", query: "DisksList",
			returns: schema.MapOf(DiskId, DiskSummary)},
		&call{name: "diskDescribe", method: "GET", query: "DiskDescribe/{diskId}",
			params:  []param{{"diskId", DiskId}},
			returns: Disk},
		&call{name: "diskInfo", method: "GET", query: "DiskGetInfo/{diskId}",
			params:  []param{{"diskId", DiskId}},
			returns: DiskInfo},
		&call{name: "diskEject", method: "POST", query: "DiskEject/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskForget", method: "POST", query: "DiskForget/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskIgnore", method: "POST", query: "DiskIgnore/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskSoftEject", method: "POST", query: "DiskSoftEject/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskSoftEjectPause", method: "POST", query: "DiskSoftEjectPause/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskSoftEjectCancel", method: "POST", query: "DiskSoftEjectCancel/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskSetDesc", method: "POST", query: "DiskSetDescription/{diskId}",
			params: []param{{"diskId", DiskId}}, json: DiskDescUpdate},
		&call{name: "diskActiveRequests", method: "GET", query: "DiskActiveRequests/{diskId}",
			params:  []param{{"diskId", DiskId}},
			returns: DiskActiveRequests},
		&call{name: "diskScrubStart", method: "POST", query: "DiskScrubStart/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskScrubPause", method: "POST", query: "DiskScrubPause/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskScrubContinue", method: "POST", query: "DiskScrubContinue/{diskId}",
			params: []param{{"diskId", DiskId}}},
		&call{name: "diskRetrim", method: "POST", query: "DiskRetrim/{diskId}",
			params: []param{{"diskId", DiskId}}},
	)

	register(
		// Volumes.
		&call{name: "volumesList", method: "GET", query: "VolumesList", multiCluster: true,
			returns: schema.ListOf(VolumeSummary)},
		&call{name: "volumesStatus", method: "GET", query: "VolumesGetStatus", multiCluster: true,
			returns: schema.MapOf(schema.Either(VolumeName, SnapshotName), VolumeStatus)},
		&call{name: "volumesSpace", method: "GET", query: "VolumesSpace", multiCluster: true,
			returns: schema.ListOf(VolumeSpace)},
		&call{name: "volumeList", method: "GET", query: "Volume/{volumeName}", multiCluster: true,
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: schema.ListOf(VolumeSummary)},
		&call{name: "volumeDescribe", method: "GET", query: "VolumeDescribe/{volumeName}", multiCluster: true,
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: Volume},
		&call{name: "volumeInfo", method: "GET", query: "VolumeGetInfo/{volumeName}", multiCluster: true,
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: VolumeInfo},
		&call{name: "volumeListSnapshots", method: "GET", query: "VolumeListSnapshots/{volumeName}",
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: schema.ListOf(SnapshotSummary)},
		&call{name: "volumeCreate", method: "POST", query: "VolumeCreate", multiCluster: true,
			json: VolumeCreateDesc, returns: ApiOkVolumeCreate},
		&call{name: "volumeUpdate", method: "POST", query: "VolumeUpdate/{volumeName}", multiCluster: true,
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: VolumeUpdateDesc},
		&call{name: "volumeFreeze", method: "POST", query: "VolumeFreeze/{volumeName}", multiCluster: true,
			params: []param{{"volumeName", VolumeNameOrGlobalId}},
			json:   VolumeFreezeDesc, jsonOptional: true},
		&call{name: "volumeRebase", method: "POST", query: "VolumeRebase/{volumeName}",
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: VolumeRebaseDesc},
		&call{name: "volumeAbandonDisk", method: "POST", query: "VolumeAbandonDisk/{volumeName}",
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: AbandonDiskDesc},
		&call{name: "volumeDelete", method: "POST", query: "VolumeDelete/{volumeName}", multiCluster: true,
			params: []param{{"volumeName", VolumeNameOrGlobalId}}},
		&call{name: "volumeBackup", method: "POST", query: "VolumeBackup", multiCluster: true,
			json: VolumeBackupDesc, returns: ApiOkVolumeBackup},
		&call{name: "volumesGroupBackup", method: "POST", query: "VolumesGroupBackup", multiCluster: true,
			json: VolumesGroupBackupDesc, returns: ApiOkVolumesGroupBackup},
		&call{name: "volumeMoveToRemote", method: "POST", query: "VolumeMoveToRemote/{volumeName}",
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: VolumeMoveToRemoteDesc},
		&call{name: "volumeExport", method: "POST", query: "VolumeExport/{volumeName}",
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: VolumeExportDesc},
		&call{name: "volumeAcquire", method: "POST", query: "VolumeAcquire/{volumeName}", multiCluster: true,
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: VolumeAcquireDesc},
		&call{name: "volumeFromRemote", method: "POST", query: "VolumeFromRemote",
			json: VolumeFromRemoteDesc},
		&call{name: "volumeRevert", method: "POST", query: "VolumeRevert/{volumeName}", multiCluster: true,
			params: []param{{"volumeName", VolumeNameOrGlobalId}}, json: VolumeRevertDesc},
	)

	register(
		// Snapshots.
		&call{name: "snapshotsList", method: "GET", query: "SnapshotsList", multiCluster: true,
			returns: schema.ListOf(SnapshotSummary)},
		&call{name: "snapshotsSpace", method: "GET", query: "SnapshotsSpace", multiCluster: true,
			returns: schema.ListOf(SnapshotSpace)},
		&call{name: "snapshotList", method: "GET", query: "Snapshot/{snapshotName}", multiCluster: true,
			params:  []param{{"snapshotName", SnapshotNameOrGlobalId}},
			returns: schema.ListOf(SnapshotSummary)},
		&call{name: "snapshotDescribe", method: "GET", query: "SnapshotDescribe/{snapshotName}", multiCluster: true,
			params:  []param{{"snapshotName", SnapshotNameOrGlobalId}},
			returns: Snapshot},
		&call{name: "snapshotInfo", method: "GET", query: "SnapshotGetInfo/{snapshotName}", multiCluster: true,
			params:  []param{{"snapshotName", SnapshotNameOrGlobalId}},
			returns: SnapshotInfo},
		&call{name: "snapshotCreate", method: "POST", query: "VolumeSnapshot/{volumeName}", multiCluster: true,
			params: []param{{"volumeName", VolumeNameOrGlobalId}},
			json:   VolumeSnapshotDesc, returns: ApiOkSnapshotCreate},
		&call{name: "snapshotUpdate", method: "POST", query: "SnapshotUpdate/{snapshotName}",
			params: []param{{"snapshotName", SnapshotNameOrGlobalId}}, json: SnapshotUpdateDesc},
		&call{name: "snapshotRebase", method: "POST", query: "SnapshotRebase/{snapshotName}",
			params: []param{{"snapshotName", SnapshotNameOrGlobalId}}, json: VolumeRebaseDesc},
		&call{name: "snapshotAbandonDisk", method: "POST", query: "VolumeAbandonDisk/{snapshotName}",
			params: []param{{"snapshotName", SnapshotNameOrGlobalId}}, json: AbandonDiskDesc},
		&call{name: "snapshotDelete", method: "POST", query: "SnapshotDelete/{snapshotName}", multiCluster: true,
			params: []param{{"snapshotName", SnapshotNameOrGlobalId}}},
		&call{name: "snapshotDeleteById", method: "POST", query: "SnapshotDeleteById/{globalVolumeId}",
			params: []param{{"globalVolumeId", GlobalVolumeId}}},
		&call{name: "snapshotCreateGroup", method: "POST", query: "VolumesGroupSnapshot", multiCluster: true,
			json: GroupSnapshotsSpec, returns: GroupSnapshotsResult},
		&call{name: "snapshotFromRemote", method: "POST", query: "SnapshotFromRemote",
			json: SnapshotFromRemoteDesc},
		&call{name: "snapshotExport", method: "POST", query: "SnapshotExport",
			json: SnapshotExportDesc},
		&call{name: "snapshotUnexport", method: "POST", query: "SnapshotUnexport",
			json: SnapshotUnexportDesc},
		&call{name: "exportsList", method: "GET", query: "ExportsList",
			returns: exportsListWrapper},
		&call{name: "volumeExportsList", method: "GET", query: "VolumeExportsList",
			returns: exportsListWrapper},
		&call{name: "snapshotsRemoteList", method: "GET", query: "SnapshotsRemoteList",
			returns: remoteSnapshotsWrapper},
		&call{name: "volumesRemoteList", method: "GET", query: "VolumesRemoteList",
			returns: remoteVolumesWrapper},
		&call{name: "snapshotsRemoteUnexport", method: "POST", query: "SnapshotsRemoteUnexport",
			json: SnapshotsRemoteUnexport},
	)

	register(
		// Attachments.
		&call{name: "attachmentsList", method: "GET", query: "AttachmentsList", multiCluster: true,
			returns: schema.ListOf(AttachmentDesc)},
		&call{name: "volumesReassign", method: "POST", query: "VolumesReassign", multiCluster: true,
			json: schema.ListOf(schema.Either(VolumeReassignDesc, SnapshotReassignDesc))},
		&call{name: "volumesReassignWait", method: "POST", query: "VolumesReassignWait", multiCluster: true,
			json: VolumesReassignWaitDesc},

		// Placement groups and fault sets.
		&call{name: "placementGroupsList", method: "GET", query: "PlacementGroupsList",
			returns: schema.MapOf(PlacementGroupName, PlacementGroup)},
		&call{name: "placementGroupDescribe", method: "GET", query: "PlacementGroupDescribe/{placementGroupName}",
			params:  []param{{"placementGroupName", PlacementGroupName}},
			returns: PlacementGroup},
		&call{name: "placementGroupUpdate", method: "POST", query: "PlacementGroupUpdate/{placementGroupName}",
			params: []param{{"placementGroupName", PlacementGroupName}}, json: PlacementGroupUpdateDesc},
		&call{name: "placementGroupDelete", method: "POST", query: "PlacementGroupDelete/{placementGroupName}",
			params: []param{{"placementGroupName", PlacementGroupName}}},
		&call{name: "faultSetsList", method: "GET", query: "FaultSetsList",
			returns: schema.MapOf(FaultSetName, FaultSet)},

		// Volume templates.
		&call{name: "volumeTemplatesList", method: "GET", query: "VolumeTemplatesList",
			returns: schema.ListOf(VolumeTemplateDesc)},
		&call{name: "volumeTemplatesStatus", method: "GET", query: "VolumeTemplatesStatus",
			returns: schema.ListOf(VolumeTemplateStatusDesc)},
		&call{name: "volumeTemplateDescribe", method: "GET", query: "VolumeTemplateDescribe/{templateName}",
			params:  []param{{"templateName", VolumeTemplateName}},
			returns: VolumeTemplateDesc},
		&call{name: "volumeTemplateCreate", method: "POST", query: "VolumeTemplateCreate",
			json: VolumeTemplateCreateDesc},
		&call{name: "volumeTemplateUpdate", method: "POST", query: "VolumeTemplateUpdate/{templateName}",
			params: []param{{"templateName", VolumeTemplateName}}, json: VolumeTemplateUpdateDesc},
		&call{name: "volumeTemplateDelete", method: "POST", query: "VolumeTemplateDelete/{templateName}",
			params: []param{{"templateName", VolumeTemplateName}}},
	)

	register(
		// Relocator and balancer.
		&call{name: "volumeRelocatorStatus", method: "GET", query: "VolumeRelocatorStatus",
			returns: VolumeRelocatorStatus},
		&call{name: "volumeRelocatorDisks", method: "GET", query: "VolumeRelocatorDisksList",
			returns: schema.MapOf(DiskId, DiskTarget)},
		&call{name: "volumeRelocatorVolumeDisks", method: "GET", query: "VolumeRelocatorVolumeDisks/{volumeName}",
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: schema.MapOf(DiskId, DiskTarget)},
		&call{name: "volumeRelocatorSnapshotDisks", method: "GET", query: "VolumeRelocatorSnapshotDisks/{snapshotName}",
			params:  []param{{"snapshotName", SnapshotNameOrGlobalId}},
			returns: schema.MapOf(DiskId, DiskTarget)},
		&call{name: "volumeBalancerGetStatus", method: "GET", query: "VolumeBalancerStatus",
			returns: VolumeBalancerStatus},
		&call{name: "volumeBalancerSetStatus", method: "POST", query: "VolumeBalancerStatus",
			json: VolumeBalancerCommand},
		&call{name: "volumeBalancerVolumesStatus", method: "GET", query: "VolumeBalancerVolumesStatus",
			returns: schema.ListOf(VolumeBalancerVolumeStatus)},
		&call{name: "volumeBalancerDisks", method: "GET", query: "VolumeBalancerDisksList",
			returns: schema.MapOf(DiskId, DiskTarget)},
		&call{name: "volumeBalancerVolumeDisks", method: "GET", query: "VolumeBalancerVolumeDisks/{volumeName}",
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: schema.MapOf(DiskId, DiskTarget)},
		&call{name: "volumeBalancerSnapshotDisks", method: "GET", query: "VolumeBalancerSnapshotDisks/{snapshotName}",
			params:  []param{{"snapshotName", SnapshotNameOrGlobalId}},
			returns: schema.MapOf(DiskId, DiskTarget)},
		&call{name: "volumeBalancerVolumeDiskSets", method: "GET", query: "VolumeBalancerVolumeDiskSets/{volumeName}",
			params:  []param{{"volumeName", VolumeNameOrGlobalId}},
			returns: VolumeBalancerVolumeDiskSets},
		&call{name: "volumeBalancerSnapshotDiskSets", method: "GET", query: "VolumeBalancerSnapshotDiskSets/{snapshotName}",
			params:  []param{{"snapshotName", SnapshotNameOrGlobalId}},
			returns: VolumeBalancerVolumeDiskSets},
		&call{name: "volumeBalancerGroups", method: "GET", query: "VolumeBalancerGroups",
			returns: schema.ListOf(VolumeBalancerAllocationGroup)},
	)

	register(
		// iSCSI.
		&call{name: "iSCSIConfig", method: "GET", query: "iSCSIConfig",
			returns: ISCSIConfig},
		&call{name: "iSCSIConfigChange", method: "POST", query: "iSCSIConfig",
			json: ISCSIConfigChange},
		&call{name: "iSCSISessionsInfo", method: "GET", query: "iSCSISessionsInfo",
			json: ISCSIControllersQuery, jsonOptional: true,
			returns: ISCSISessionsInfo},
		&call{name: "iSCSInterfacesInfo", method: "GET", query: "iSCSInterfacesInfo",
			json: ISCSIControllersQuery, jsonOptional: true,
			returns: ISCSIControllersInterfacesInfo},

		// Remote locations, clusters and bridges.
		&call{name: "locationsList", method: "GET", query: "LocationsList",
			returns: locationsListWrapper},
		&call{name: "locationAdd", method: "POST", query: "LocationAdd",
			json: RemoteLocationBase},
		&call{name: "locationRemove", method: "POST", query: "LocationRemove",
			json: locationRemoveWrapper},
		&call{name: "locationUpdate", method: "POST", query: "LocationUpdate",
			json: RemoteLocationUpdateDesc},
		&call{name: "locationRename", method: "POST", query: "LocationRename",
			json: RemoteLocationRenameDesc},
		&call{name: "clustersList", method: "GET", query: "ClustersList",
			returns: clustersListWrapper},
		&call{name: "clusterAdd", method: "POST", query: "ClusterAdd",
			json: RemoteClusterAddDesc},
		&call{name: "clusterRemove", method: "POST", query: "ClusterRemove",
			json: RemoteClusterRemoveDesc},
		&call{name: "clusterRename", method: "POST", query: "ClusterRename",
			json: RemoteClusterRenameDesc},
		&call{name: "remoteBridgesList", method: "GET", query: "RemoteBridgesList",
			returns: remoteBridgesWrapper},
		&call{name: "remoteBridgeAdd", method: "POST", query: "RemoteBridgeAdd",
			json: RemoteBridgeAddDesc},
		&call{name: "remoteBridgeRemove", method: "POST", query: "RemoteBridgeRemove",
			json: RemoteBridgeRemoveDesc},

		// Maintenance.
		&call{name: "maintenanceList", method: "GET", query: "MaintenanceList",
			returns: MaintenanceNodesList},
		&call{name: "maintenanceSet", method: "POST", query: "MaintenanceSet",
			json: MaintenanceSetDesc},
		&call{name: "maintenanceComplete", method: "POST", query: "MaintenanceComplete",
			json: MaintenanceCompleteDesc},
	)
}
