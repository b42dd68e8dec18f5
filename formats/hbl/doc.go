// SPDX-License-Identifier: EPL-2.0

// Package hbl reads and writes the XML form of a legacy binaural envelope,
// the text container the HBX player saved with the .hbl extension.
//
// # Document
//
//	<BinauralEnvelope baseFrequency="220">
//	    <Point t="0" binauralFrequency="10" binauralFrequencyInterpolationF="1"
//	           binauralVolume="1" binauralVolumeInterpolationF="1"
//	           noiseVolume="0.3" noiseVolumeInterpolationF="1"/>
//	</BinauralEnvelope>
//
// The decoder looks for the first BinauralEnvelope element anywhere in the
// document and reads its direct children. Children named Point, in any
// letter case, become control points; every other child, comment or text
// node is ignored. All seven Point attributes are mandatory.
package hbl
