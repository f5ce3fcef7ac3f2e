// Package camera casts rays from a pinhole camera through a view plane and
// records, per pixel, the nearest object hit.
//
// Camera space has the camera at the origin looking along +Z with +Y up, which
// makes it left-handed. World space is right-handed; the camera-to-world
// transform therefore always includes a flip of the Z axis.
//
// A render pass (UpdatePixelBuffer) moves every object into camera space,
// casts one ray per pixel inside each object's screen footprint and moves the
// objects back before returning. Pixel (0, 0) is the bottom-left corner of the
// view plane.
package camera
