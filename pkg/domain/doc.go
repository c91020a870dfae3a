/*
Package domain contains the core data model of the bemjson build engine.

It defines the node union that flows through a build, the helpers that classify
and combine node shapes, and the lifecycle events emitted while a tree is built.
This package is kept pure and free of external dependencies like I/O or codecs.

# Key Entities

  - Node: A sealed union of Scalar, List, *Component and Absent.
  - Component: A block, element or plain object carrying mods, attrs and content.
  - Absent: The marker a removed node builds into.
  - LifecycleHooks: Callbacks observing node entry/exit, handler calls and removals.
*/
package domain
