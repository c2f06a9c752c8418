// Package geom holds the value algebra used by the wirecam projection pipeline.
//
// Vector3 and Matrix are plain values: operations return new instances and never
// alias their receivers. Ray and Plane add the one piece of geometry the camera
// needs, a ray/plane intersection that reports absence instead of failing.
//
// Axis convention (must not change, projection depends on it):
//
//	Right   = (1, 0, 0)
//	Up      = (0, 1, 0)
//	Forward = (0, 0, 1)
package geom
