package api

// Shapes for the multi-site features: remote locations, clusters and
// bridges, snapshot exports and transfers, backups and group snapshots.

import "github.com/storpool/storpool-go/pkg/schema"

var (
	// SnapshotFromRemoteDesc fetches a remote snapshot into the local
	// cluster.
	SnapshotFromRemoteDesc = schema.NewShape("SnapshotFromRemoteDesc",
		schema.F("remoteLocation", RemoteLocationName),
		schema.F("remoteId", GlobalVolumeId),
		schema.F("name", schema.Maybe(VolumeName)),
		schema.F("placeAll", schema.Maybe(PlacementGroupName)),
		schema.F("placeTail", schema.Maybe(PlacementGroupName)),
		schema.F("placeHead", schema.Maybe(PlacementGroupName)),
		schema.F("replication", schema.Maybe(VolumeReplication)),
		schema.F("template", schema.Maybe(VolumeTemplateName)),
		schema.F("export", schema.Maybe(schema.Bool)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	SnapshotExportDesc = schema.NewShape("SnapshotExportDesc",
		schema.F("snapshot", SnapshotName),
		schema.F("location", RemoteLocationName),
	)

	SnapshotUnexportDesc = schema.NewShape("SnapshotUnexportDesc",
		schema.F("snapshot", SnapshotName),
		schema.F("location", schema.Maybe(RemoteLocationName)),
		schema.F("all", schema.Maybe(schema.Bool)),
		schema.F("force", schema.Maybe(schema.Bool)),
	)

	VolumeBackupDesc = schema.NewShape("VolumeBackupDesc",
		schema.F("volume", VolumeName),
		schema.F("location", RemoteLocationName),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	VolumesGroupBackupSingle = schema.NewShape("VolumesGroupBackupSingle",
		schema.F("remoteId", GlobalVolumeId),
	)

	VolumesGroupBackupDesc = schema.NewShape("VolumesGroupBackupDesc",
		schema.F("location", RemoteLocationName),
		schema.F("volumes", schema.ListOf(VolumeName)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	// VolumeMoveToRemoteDesc hands a volume over to a remote cluster.
	VolumeMoveToRemoteDesc = schema.NewShape("VolumeMoveToRemoteDesc",
		schema.F("cluster", ClusterName),
		schema.F("onAttached", schema.Maybe(schema.OneOf("MoveOnAttached", "fail", "detach", "export"))),
	)

	// VolumeExportDesc makes a volume attachable from another cluster.
	VolumeExportDesc = schema.NewShape("VolumeExportDesc",
		schema.F("cluster", ClusterName),
	)

	// VolumeAcquireDesc pulls a remote volume into the local cluster.
	VolumeAcquireDesc = schema.NewShape("VolumeAcquireDesc",
		schema.F("onRemoteAttached", schema.Maybe(schema.OneOf("AcquireOnRemoteAttached", "fail", "detach", "export"))),
	)

	// VolumeFromRemoteDesc creates a local volume on top of a remote
	// snapshot.
	VolumeFromRemoteDesc = schema.NewShape("VolumeFromRemoteDesc",
		schema.F("remoteLocation", RemoteLocationName),
		schema.F("remoteId", GlobalVolumeId),
		schema.F("name", schema.Maybe(VolumeName)),
		schema.F("template", schema.Maybe(VolumeTemplateName)),
		schema.F("placeAll", schema.Maybe(PlacementGroupName)),
		schema.F("placeTail", schema.Maybe(PlacementGroupName)),
		schema.F("placeHead", schema.Maybe(PlacementGroupName)),
		schema.F("replication", schema.Maybe(VolumeReplication)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	// RemoteSnapshot is one snapshot visible at a remote location.
	RemoteSnapshot = schema.NewShape("RemoteSnapshot",
		schema.F("name", VolumeName),
		schema.F("location", RemoteLocationName),
		schema.F("creationTimestamp", schema.Long),
		schema.F("size", VolumeSize),
		schema.F("remoteId", GlobalVolumeId),
		schema.F("onVolume", schema.Maybe(VolumeName)),
		schema.F("localSnapshot", schema.Maybe(SnapshotName)),
	)

	RemoteLocation = schema.NewShape("RemoteLocation",
		schema.F("id", LocationId),
		schema.F("name", RemoteLocationName),
	)

	RemoteLocationBase = schema.NewShape("RemoteLocationBase",
		schema.F("id", LocationId),
		schema.F("name", RemoteLocationName),
		schema.F("sendBufferSize", schema.Maybe(schema.Long)),
		schema.F("recvBufferSize", schema.Maybe(schema.Long)),
	)

	RemoteLocationUpdateDesc = schema.NewShape("RemoteLocationUpdateDesc",
		schema.F("location", RemoteLocationName),
		schema.F("sendBufferSize", schema.Maybe(schema.Long)),
		schema.F("recvBufferSize", schema.Maybe(schema.Long)),
	)

	RemoteLocationRenameDesc = schema.NewShape("RemoteLocationRenameDesc",
		schema.F("location", RemoteLocationName),
		schema.F("name", RemoteLocationName),
	)

	RemoteCluster = schema.NewShape("RemoteCluster",
		schema.F("id", RemoteClusterId),
		schema.F("name", ClusterName),
		schema.F("location", RemoteLocationName),
	)

	RemoteClusterAddDesc = schema.NewShape("RemoteClusterAddDesc",
		schema.F("id", RemoteClusterId),
		schema.F("name", ClusterName),
		schema.F("location", RemoteLocationName),
	)

	RemoteClusterRemoveDesc = schema.NewShape("RemoteClusterRemoveDesc",
		schema.F("name", ClusterName),
	)

	RemoteClusterRenameDesc = schema.NewShape("RemoteClusterRenameDesc",
		schema.F("cluster", ClusterName),
		schema.F("name", ClusterName),
	)

	// RemoteBridge is one host allowed to carry inter-cluster traffic.
	RemoteBridge = schema.NewShape("RemoteBridge",
		schema.F("location", RemoteLocationName),
		schema.F("ip", schema.Str),
		schema.F("publicKey", schema.Str),
		schema.F("noCrypto", schema.Maybe(schema.Bool)),
		schema.F("minimumDeleteDelay", schema.Maybe(schema.Int)),
	)

	RemoteBridgeAddDesc = schema.NewShape("RemoteBridgeAddDesc",
		schema.F("location", RemoteLocationName),
		schema.F("ip", schema.Str),
		schema.F("publicKey", schema.Str),
		schema.F("noCrypto", schema.Maybe(schema.Bool)),
		schema.F("minimumDeleteDelay", schema.Maybe(schema.Int)),
	)

	RemoteBridgeRemoveDesc = schema.NewShape("RemoteBridgeRemoveDesc",
		schema.F("ip", schema.Str),
	)

	// Export records a snapshot made visible to a remote location.
	Export = schema.NewShape("Export",
		schema.F("snapshot", SnapshotName),
		schema.F("location", RemoteLocationName),
		schema.F("globalId", GlobalVolumeId),
		schema.F("backingUp", schema.Maybe(schema.Bool)),
		schema.F("volumeId", schema.Internal(schema.Long)),
		schema.F("visibleVolumeId", schema.Internal(schema.Long)),
	)

	SnapshotRemoteUnexportDesc = schema.NewShape("SnapshotRemoteUnexportDesc",
		schema.F("location", RemoteLocationName),
		schema.F("globalSnapshotId", GlobalVolumeId),
		schema.F("targetDeleteDate", schema.Maybe(schema.Int)),
		schema.F("deleteAfter", schema.Maybe(schema.Int)),
	)

	SnapshotsRemoteUnexport = schema.NewShape("SnapshotsRemoteUnexport",
		schema.F("remoteSnapshots", schema.ListOf(SnapshotRemoteUnexportDesc)),
	)

	GroupSnapshotSpec = schema.NewShape("GroupSnapshotSpec",
		schema.F("volume", VolumeName),
		schema.F("name", schema.Maybe(SnapshotName)),
	)

	GroupSnapshotsSpec = schema.NewShape("GroupSnapshotsSpec",
		schema.F("volumes", schema.ListOf(GroupSnapshotSpec)),
	)

	GroupSnapshotResult = schema.NewShape("GroupSnapshotResult",
		schema.F("volume", VolumeName),
		schema.F("snapshot", schema.Maybe(SnapshotName)),
		schema.F("remoteId", GlobalVolumeId),
	)

	GroupSnapshotsResult = schema.NewShape("GroupSnapshotsResult",
		schema.F("volumes", schema.ListOf(GroupSnapshotResult)),
	)
)

// Single-field wrapper shapes of the list responses; the facade methods
// unwrap them.
var (
	exportsListWrapper = schema.NewShape("ExportsList",
		schema.F("exports", schema.ListOf(Export)),
	)
	remoteSnapshotsWrapper = schema.NewShape("SnapshotsRemoteList",
		schema.F("snapshots", schema.ListOf(RemoteSnapshot)),
	)
	remoteVolumesWrapper = schema.NewShape("VolumesRemoteList",
		schema.F("volumes", schema.ListOf(RemoteSnapshot)),
	)
	locationsListWrapper = schema.NewShape("LocationsList",
		schema.F("locations", schema.ListOf(RemoteLocation)),
	)
	clustersListWrapper = schema.NewShape("ClustersList",
		schema.F("clusters", schema.ListOf(RemoteCluster)),
	)
	remoteBridgesWrapper = schema.NewShape("RemoteBridgesList",
		schema.F("remoteBridges", schema.ListOf(RemoteBridge)),
	)
	locationRemoveWrapper = schema.NewShape("LocationRemove",
		schema.F("location", RemoteLocationName),
	)
)
