// Package ecs provides ECS adapters for scratchroad's lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges road events
// (obstacle spawn/despawn, lane markings, progress) into a [Donburi] world
// as typed events. Subscribe to [ObstacleEventType], [LaneEventType] or
// [ProgressEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	road.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
