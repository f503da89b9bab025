// Package quat provides unit quaternions for 3D rotation and their
// conversion to the rotation matrices used by package transform.
//
// A Quat is a plain value {W, X, Y, Z}. Rotation operations assume unit
// length; FromAxisAngle and Normalized produce unit quaternions, and Mul of
// two unit quaternions stays unit up to rounding.
package quat
