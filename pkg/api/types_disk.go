package api

// Disk shapes: per-disk summaries and details, placement groups, fault
// sets and the balancer/relocator per-disk targets.

import "github.com/storpool/storpool-go/pkg/schema"

var (
	// DiskObject is one stored object of a volume or snapshot on a disk.
	DiskObject = schema.NewShape("DiskObject",
		schema.F("objectId", schema.Internal(schema.Int)),
		schema.F("generation", schema.Long),
		schema.F("version", schema.Long),
		schema.F("volume", schema.Str),
		schema.F("parentVolume", schema.Str),
		schema.F("onDiskSize", schema.Int),
		schema.F("storedSize", schema.Int),
		schema.F("state", ObjectState),
		schema.F("volumeId", schema.Internal(schema.Long)),
	)

	// DiskVolumeInfo sums up the data one volume keeps on one disk.
	DiskVolumeInfo = schema.NewShape("DiskVolumeInfo",
		schema.F("name", schema.Str),
		schema.F("storedSize", schema.Long),
		schema.F("onDiskSize", schema.Long),
		schema.F("objectsCount", schema.Long),
		schema.F("objectStates", schema.MapOf(ObjectState, schema.Int)),
	)

	DiskWbcStats = schema.NewShape("DiskWbcStats",
		schema.F("pages", schema.Int),
		schema.F("pagesPending", schema.Int),
		schema.F("maxPages", schema.Int),
	)

	DiskAggregateScores = schema.NewShape("DiskAggregateScores",
		schema.F("entries", schema.Int),
		schema.F("space", schema.Int),
		schema.F("total", schema.Int),
	)

	// DiskSummaryBase carries the attributes reported for every disk,
	// up or down.
	DiskSummaryBase = schema.NewShape("DiskSummaryBase",
		schema.F("id", DiskId),
		schema.F("serverId", ServerId),
		schema.F("ssd", schema.Bool),
		schema.F("generationLeft", schema.Long),
		schema.F("model", schema.Str),
		schema.F("serial", schema.Str),
		schema.F("description", DiskDescription),
		schema.F("softEject", schema.OneOf("DiskSoftEjectStatus", "on", "off", "paused")),
	)

	DownDiskSummary = DiskSummaryBase.Extend("DownDiskSummary")

	// UpDiskSummary adds the live counters only an active disk reports.
	// Its generationLeft is pinned to the active-disk marker, which is
	// what distinguishes it from DownDiskSummary on the wire.
	UpDiskSummary = DiskSummaryBase.Extend("UpDiskSummary",
		schema.F("generationLeft", schema.Const(GenerationNone)),
		schema.F("sectorsCount", schema.Long),
		schema.F("empty", schema.Bool),
		schema.F("noFua", schema.Bool),
		schema.F("noFlush", schema.Bool),
		schema.F("noTrim", schema.Bool),
		schema.F("isWbc", schema.Bool),
		schema.F("journaled", schema.Bool),
		schema.F("device", schema.Str),
		schema.F("agCount", schema.Internal(schema.Int)),
		schema.F("agAllocated", schema.Internal(schema.Int)),
		schema.F("agFree", schema.Internal(schema.Int)),
		schema.F("agFull", schema.Internal(schema.Int)),
		schema.F("agPartial", schema.Internal(schema.Int)),
		schema.F("agFreeing", schema.Internal(schema.Int)),
		schema.F("agMaxSizeFull", schema.Internal(schema.Int)),
		schema.F("agMaxSizePartial", schema.Internal(schema.Int)),
		schema.F("entriesCount", schema.Int),
		schema.F("entriesAllocated", schema.Int),
		schema.F("entriesFree", schema.Int),
		schema.F("objectsCount", schema.Int),
		schema.F("objectsAllocated", schema.Int),
		schema.F("objectsFree", schema.Int),
		schema.F("objectsOnDiskSize", schema.Long),
		schema.F("wbc", schema.Internal(schema.EitherOr(DiskWbcStats, nil))),
		schema.F("aggregateScore", schema.Internal(DiskAggregateScores)),
		schema.F("scrubbingStartedBefore", schema.Int),
		schema.F("scrubbedBytes", schema.Int),
		schema.F("scrubbingBW", schema.Int),
		schema.F("scrubbingFinishAfter", schema.Int),
		schema.F("scrubbingPausedFor", schema.Int),
		schema.F("scrubbingPaused", schema.Bool),
		schema.F("lastScrubCompleted", schema.Int),
	)

	// DiskSummary decodes to UpDiskSummary when the live counters are
	// present and falls back to DownDiskSummary otherwise.
	DiskSummary = schema.Either(UpDiskSummary, DownDiskSummary)

	DiskInfo = UpDiskSummary.Extend("DiskInfo",
		schema.F("objectStates", schema.MapOf(ObjectState, schema.Int)),
		schema.F("volumeInfos", schema.MapOf(schema.Str, DiskVolumeInfo)),
	)

	Disk = UpDiskSummary.Extend("Disk",
		schema.F("objects", schema.MapOf(schema.Int, DiskObject)),
	)

	DiskDescUpdate = schema.NewShape("DiskDescUpdate",
		schema.F("description", DiskDescription),
	)

	// PlacementGroup names a set of disks volumes may be placed on.
	PlacementGroup = schema.NewShape("PlacementGroup",
		schema.F("id", schema.Internal(schema.Int)),
		schema.F("name", PlacementGroupName),
		schema.F("disks", schema.SetOf(DiskId)),
	)

	PlacementGroupUpdateDesc = schema.NewShape("PlacementGroupUpdateDesc",
		schema.F("rename", schema.Maybe(PlacementGroupName)),
		schema.F("addDisks", schema.SetOf(DiskId)),
		schema.F("rmDisks", schema.SetOf(DiskId)),
	)

	FaultSet = schema.NewShape("FaultSet",
		schema.F("name", FaultSetName),
		schema.F("servers", schema.SetOf(ServerId)),
	)

	// TargetDesc is one current-vs-target metric of a rebalancing run.
	TargetDesc = schema.NewShape("TargetDesc",
		schema.F("current", schema.Int),
		schema.F("target", schema.Int),
		schema.F("delta", schema.Int),
		schema.F("toRecover", schema.Int),
	)

	DownDiskTarget = schema.NewShape("DownDiskTarget",
		schema.F("id", DiskId),
		schema.F("serverId", ServerId),
		schema.F("generationLeft", schema.Long),
	)

	UpDiskTarget = schema.NewShape("UpDiskTarget",
		schema.F("id", DiskId),
		schema.F("serverId", ServerId),
		schema.F("generationLeft", schema.Const(GenerationNone)),
		schema.F("objectsAllocated", TargetDesc),
		schema.F("objectsCount", schema.Int),
		schema.F("storedSize", TargetDesc),
		schema.F("onDiskSize", TargetDesc),
	)

	DiskTarget = schema.Either(UpDiskTarget, DownDiskTarget)
)
