package api

// Volume and snapshot shapes: summaries, detailed placement, status,
// create/update descriptors, attachments, templates and the relocator
// and balancer views.

import "github.com/storpool/storpool-go/pkg/schema"

var (
	VolumeLimits = schema.NewShape("VolumeLimits",
		schema.F("bw", Bandwidth),
		schema.F("iops", IOPS),
	)

	// VolumeSummaryBase carries the attributes shared by volume and
	// snapshot summaries.
	VolumeSummaryBase = VolumeLimits.Extend("VolumeSummaryBase",
		schema.F("id", schema.Internal(schema.Long)),
		schema.F("parentName", schema.EitherOr(SnapshotName, "")),
		schema.F("templateName", schema.EitherOr(VolumeTemplateName, "")),
		schema.F("size", VolumeSize),
		schema.F("replication", VolumeReplication),
		schema.F("placeAll", PlacementGroupName),
		schema.F("placeTail", PlacementGroupName),
		schema.F("placeHead", PlacementGroupName),
		schema.F("parentVolumeId", schema.Internal(schema.Long)),
		schema.F("originalParentVolumeId", schema.Internal(schema.Long)),
		schema.F("visibleVolumeId", schema.Long),
		schema.F("templateId", schema.Internal(schema.Long)),
		schema.F("objectsCount", schema.Int),
		schema.F("creationTimestamp", schema.Long),
		schema.F("flags", schema.Internal(schema.Int)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	VolumeSummary = VolumeSummaryBase.Extend("VolumeSummary",
		schema.F("name", VolumeName),
	)

	SnapshotSummary = VolumeSummaryBase.Extend("SnapshotSummary",
		schema.F("name", SnapshotName),
		schema.F("onVolume", VolumeName),
		schema.F("autoName", schema.Bool),
		schema.F("bound", schema.Bool),
		schema.F("deleted", schema.Bool),
		schema.F("transient", schema.Bool),
		schema.F("targetDeleteDate", schema.Maybe(schema.Int)),
		schema.F("globalId", GlobalVolumeId),
		schema.F("recoveringFromRemote", schema.Bool),
	)

	SnapshotSpace = SnapshotSummary.Extend("SnapshotSpace",
		schema.F("storedSize", schema.Long),
		schema.F("spaceUsed", schema.Long),
	)

	VolumeSpace = VolumeSummary.Extend("VolumeSpace",
		schema.F("storedSize", schema.Long),
		schema.F("spaceUsed", schema.Long),
	)

	// VolumeChainStat counts the objects kept on one set of disks.
	VolumeChainStat = schema.NewShape("VolumeChainStat",
		schema.F("disks", schema.ListOf(DiskId)),
		schema.F("count", schema.Int),
	)

	VolumeInfo = VolumeSummary.Extend("VolumeInfo",
		schema.F("disksCount", schema.Int),
		schema.F("objectsPerDisk", schema.MapOf(DiskId, schema.Int)),
		schema.F("objectsPerChain", schema.ListOf(VolumeChainStat)),
		schema.F("objectsPerDiskSet", schema.ListOf(VolumeChainStat)),
	)

	SnapshotInfo = SnapshotSummary.Extend("SnapshotInfo",
		schema.F("disksCount", schema.Int),
		schema.F("objectsPerDisk", schema.MapOf(DiskId, schema.Int)),
		schema.F("objectsPerChain", schema.ListOf(VolumeChainStat)),
		schema.F("objectsPerDiskSet", schema.ListOf(VolumeChainStat)),
	)

	// VolumeStatus is the operational state of one volume or snapshot.
	VolumeStatus = schema.NewShape("VolumeStatus",
		schema.F("name", schema.Either(VolumeName, SnapshotName)),
		schema.F("size", VolumeSize),
		schema.F("replication", VolumeReplication),
		schema.F("status", schema.OneOf("VolumeCurentStatus", "up", "up soon", "data lost", "down")),
		schema.F("snapshot", schema.Bool),
		schema.F("migrating", schema.Bool),
		schema.F("decreasedRedundancy", schema.Bool),
		schema.F("balancerBlocked", schema.Bool),
		schema.F("storedSize", schema.Int),
		schema.F("onDiskSize", schema.Int),
		schema.F("syncingDataBytes", schema.Int),
		schema.F("syncingMetaObjects", schema.Int),
		schema.F("downBytes", schema.Int),
		schema.F("downDrives", schema.ListOf(DiskId)),
		schema.F("missingDrives", schema.ListOf(DiskId)),
		schema.F("missingTargetDrives", schema.ListOf(DiskId)),
		schema.F("softEjectingDrives", schema.ListOf(DiskId)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	Snapshot = SnapshotSummary.Extend("Snapshot",
		schema.F("targetDiskSets", schema.ListOf(schema.ListOf(DiskId))),
		schema.F("objects", schema.ListOf(schema.ListOf(DiskId))),
	)

	Volume = VolumeSummary.Extend("Volume",
		schema.F("targetDiskSets", schema.ListOf(schema.ListOf(DiskId))),
		schema.F("objects", schema.ListOf(schema.ListOf(DiskId))),
	)

	// VolumePolicyDesc is the placement and QoS policy fields shared by
	// the volume, snapshot and template descriptors.
	VolumePolicyDesc = schema.NewShape("VolumePolicyDesc",
		schema.F("placeAll", schema.Maybe(PlacementGroupName)),
		schema.F("placeTail", schema.Maybe(PlacementGroupName)),
		schema.F("placeHead", schema.Maybe(PlacementGroupName)),
		schema.F("replication", schema.Maybe(VolumeReplication)),
		schema.F("bw", schema.Maybe(Bandwidth)),
		schema.F("iops", schema.Maybe(IOPS)),
		schema.F("reuseServer", schema.Maybe(schema.Bool)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	VolumeCreateDesc = VolumePolicyDesc.Extend("VolumeCreateDesc",
		schema.F("name", VolumeName),
		schema.F("size", schema.Maybe(VolumeSize)),
		schema.F("parent", schema.Maybe(SnapshotName)),
		schema.F("template", schema.Maybe(VolumeTemplateName)),
		schema.F("baseOn", schema.Maybe(VolumeName)),
	)

	VolumeUpdateDesc = VolumePolicyDesc.Extend("VolumeUpdateDesc",
		schema.F("rename", schema.Maybe(VolumeName)),
		schema.F("size", schema.Maybe(VolumeSize)),
		schema.F("sizeAdd", schema.Maybe(VolumeResize)),
		schema.F("template", schema.Maybe(VolumeTemplateName)),
		schema.F("shrinkOk", schema.Maybe(schema.Bool)),
	)

	VolumeSnapshotDesc = schema.NewShape("VolumeSnapshotDesc",
		schema.F("name", schema.Maybe(VolumeName)),
		schema.F("bind", schema.Maybe(schema.Bool)),
		schema.F("targetDeleteDate", schema.Maybe(schema.Int)),
		schema.F("deleteAfter", schema.Maybe(schema.Int)),
		schema.F("tags", schema.Maybe(schema.MapOf(VolumeTagName, VolumeTagValue))),
	)

	SnapshotUpdateDesc = VolumePolicyDesc.Extend("SnapshotUpdateDesc",
		schema.F("rename", schema.Maybe(VolumeName)),
		schema.F("bind", schema.Maybe(schema.Bool)),
		schema.F("targetDeleteDate", schema.Maybe(schema.Int)),
		schema.F("deleteAfter", schema.Maybe(schema.Int)),
	)

	VolumeRebaseDesc = schema.NewShape("VolumeRebaseDesc",
		schema.F("parentName", schema.Maybe(SnapshotName)),
	)

	AbandonDiskDesc = schema.NewShape("AbandonDiskDesc",
		schema.F("diskId", DiskId),
	)

	VolumeFreezeDesc = schema.NewShape("VolumeFreezeDesc",
		schema.F("targetDeleteDate", schema.Maybe(schema.Int)),
		schema.F("deleteAfter", schema.Maybe(schema.Int)),
	)

	VolumeRevertDesc = schema.NewShape("VolumeRevertDesc",
		schema.F("toSnapshot", SnapshotName),
		schema.F("revertSize", schema.Maybe(schema.Bool)),
	)

	// VolumeReassignDesc changes the attachments of one volume.
	VolumeReassignDesc = schema.NewShape("VolumeReassignDesc",
		schema.F("volume", VolumeName),
		schema.F("detach", schema.Maybe(DetachClientsList)),
		schema.F("ro", schema.Maybe(schema.ListOf(ClientId))),
		schema.F("rw", schema.Maybe(schema.ListOf(ClientId))),
		schema.F("force", schema.EitherOr(schema.Bool, false)),
	)

	// SnapshotReassignDesc changes the attachments of one snapshot;
	// snapshots only ever attach read-only.
	SnapshotReassignDesc = schema.NewShape("SnapshotReassignDesc",
		schema.F("snapshot", SnapshotName),
		schema.F("detach", schema.Maybe(DetachClientsList)),
		schema.F("ro", schema.Maybe(schema.ListOf(ClientId))),
		schema.F("force", schema.EitherOr(schema.Bool, false)),
	)

	VolumesReassignWaitDesc = schema.NewShape("VolumesReassignWaitDesc",
		schema.F("reassign", schema.ListOf(schema.Either(VolumeReassignDesc, SnapshotReassignDesc))),
		schema.F("attachTimeout", schema.Maybe(schema.Int)),
	)

	AttachmentDesc = schema.NewShape("AttachmentDesc",
		schema.F("volume", VolumeName),
		schema.F("snapshot", schema.Bool),
		schema.F("client", ClientId),
		schema.F("rights", AttachmentRights),
		schema.F("pos", AttachmentPos),
	)

	// VolumeTemplateDesc is a stored template of volume settings.
	VolumeTemplateDesc = VolumeLimits.Extend("VolumeTemplateDesc",
		schema.F("id", schema.Internal(schema.Int)),
		schema.F("name", VolumeTemplateName),
		schema.F("parentName", schema.EitherOr(SnapshotName, "")),
		schema.F("placeAll", PlacementGroupName),
		schema.F("placeTail", PlacementGroupName),
		schema.F("placeHead", PlacementGroupName),
		schema.F("size", schema.EitherOr(VolumeSize, "-")),
		schema.F("replication", schema.EitherOr(VolumeReplication, "-")),
		schema.F("reuseServer", schema.Maybe(schema.Bool)),
	)

	VolumeTemplateSpaceEstInternal = schema.NewShape("VolumeTemplateSpaceEstInternal",
		schema.F("u1", schema.Int),
		schema.F("u2", schema.Int),
		schema.F("u3", schema.Int),
	)

	VolumeTemplateSpaceEstEntry = schema.NewShape("VolumeTemplateSpaceEstEntry",
		schema.F("free", schema.Int),
		schema.F("capacity", schema.Int),
		schema.F("internal", schema.Internal(VolumeTemplateSpaceEstInternal)),
	)

	VolumeTemplateSpaceEst = VolumeTemplateSpaceEstEntry.Extend("VolumeTemplateSpaceEst",
		schema.F("placeAll", VolumeTemplateSpaceEstEntry),
		schema.F("placeTail", VolumeTemplateSpaceEstEntry),
		schema.F("placeHead", VolumeTemplateSpaceEstEntry),
	)

	VolumeTemplateStatusDesc = schema.NewShape("VolumeTemplateStatusDesc",
		schema.F("id", schema.Internal(schema.Int)),
		schema.F("name", VolumeTemplateName),
		schema.F("placeAll", PlacementGroupName),
		schema.F("placeTail", PlacementGroupName),
		schema.F("placeHead", PlacementGroupName),
		schema.F("replication", schema.EitherOr(VolumeReplication, "-")),
		schema.F("volumesCount", schema.Int),
		schema.F("snapshotsCount", schema.Int),
		schema.F("removingSnapshotsCount", schema.Int),
		schema.F("size", schema.EitherOr(VolumeSize, int64(0))),
		schema.F("totalSize", schema.EitherOr(VolumeSize, int64(0))),
		schema.F("onDiskSize", schema.Long),
		schema.F("storedSize", schema.Long),
		schema.F("availablePlaceAll", schema.Long),
		schema.F("availablePlaceTail", schema.Long),
		schema.F("availablePlaceHead", schema.Long),
		schema.F("capacityPlaceAll", schema.Long),
		schema.F("capacityPlaceTail", schema.Long),
		schema.F("capacityPlaceHead", schema.Long),
		schema.F("stored", VolumeTemplateSpaceEst),
	)

	VolumeTemplateCreateDesc = VolumePolicyDesc.Extend("VolumeTemplateCreateDesc",
		schema.F("name", VolumeTemplateName),
		schema.F("parent", schema.Maybe(SnapshotName)),
		schema.F("size", schema.Maybe(VolumeSize)),
	)

	VolumeTemplateUpdateDesc = VolumePolicyDesc.Extend("VolumeTemplateUpdateDesc",
		schema.F("rename", schema.Maybe(VolumeTemplateName)),
		schema.F("parent", schema.Maybe(SnapshotName)),
		schema.F("size", schema.Maybe(VolumeSize)),
		schema.F("propagate", schema.Maybe(schema.Bool)),
	)

	VolumeRelocatorStatus = schema.NewShape("VolumeRelocatorStatus",
		schema.F("status", schema.OneOf("RelocatorStatus", "on", "off", "blocked")),
		schema.F("volumesToRelocate", schema.Int),
	)

	VolumeBalancerStatus = schema.NewShape("VolumeBalancerStatus",
		schema.F("status", schema.OneOf("BalancerStatus", "nothing to do", "blocked", "waiting", "working", "ready", "commiting")),
		schema.F("auto", schema.Bool),
	)

	VolumeBalancerCommand = schema.NewShape("VolumeBalancerCommand",
		schema.F("cmd", schema.OneOf("BalancerCommand", "start", "stop", "commit")),
	)

	VolumeBalancerVolumeStatus = schema.NewShape("VolumeBalancerVolumeStatus",
		schema.F("name", schema.Either(VolumeName, SnapshotName)),
		schema.F("placeAll", PlacementGroupName),
		schema.F("placeTail", PlacementGroupName),
		schema.F("placeHead", PlacementGroupName),
		schema.F("replication", VolumeReplication),
		schema.F("size", schema.Long),
		schema.F("objectsCount", schema.Int),
		schema.F("snapshot", schema.Bool),
		schema.F("reallocated", schema.Bool),
		schema.F("blocked", schema.Bool),
	)

	VolumeBalancerVolumeDiskSets = VolumeBalancerVolumeStatus.Extend("VolumeBalancerVolumeDiskSets",
		schema.F("currentDiskSets", schema.ListOf(schema.ListOf(DiskId))),
		schema.F("balancerDiskSets", schema.ListOf(schema.ListOf(DiskId))),
	)

	VolumeBalancerSlot = schema.NewShape("VolumeBalancerSlot",
		schema.F("storedSize", schema.Int),
		schema.F("objectsCount", schema.Int),
	)

	// VolumeBalancerAllocationGroup is one family of volumes and
	// snapshots the balancer places together.
	VolumeBalancerAllocationGroup = schema.NewShape("VolumeBalancerAllocationGroup",
		schema.F("placeAll", PlacementGroupName),
		schema.F("placeTail", PlacementGroupName),
		schema.F("placeHead", PlacementGroupName),
		schema.F("replication", VolumeReplication),
		schema.F("feasible", schema.Bool),
		schema.F("blocked", schema.Bool),
		schema.F("size", schema.Int),
		schema.F("storedSize", schema.Int),
		schema.F("objectsCount", schema.Int),
		schema.F("root", schema.Either(VolumeName, SnapshotName)),
		schema.F("volumes", schema.ListOf(schema.Either(VolumeName, SnapshotName))),
		schema.F("targetDiskSets", schema.ListOf(schema.ListOf(DiskId))),
		schema.F("slots", schema.ListOf(VolumeBalancerSlot)),
		schema.F("reuseServer", schema.Maybe(schema.Bool)),
	)
)
