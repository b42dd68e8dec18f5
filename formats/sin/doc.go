// SPDX-License-Identifier: EPL-2.0

// Package sin reads and writes native presets (.sin files).
//
// A native preset is XML. Metadata are child elements so titles and
// descriptions may hold any text; envelopes are lists of points:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<Preset length="300" loop="-1">
//		<Title>Focus</Title>
//		<Author></Author>
//		<Description>Imported from HBX Binaural Player</Description>
//		<Noise>
//			<Point t="0" value="0.35" curvature="1"></Point>
//		</Noise>
//		<Track volume="1">
//			<BaseFrequency>...</BaseFrequency>
//			<EntrainmentFrequency>...</EntrainmentFrequency>
//			<Volume>...</Volume>
//		</Track>
//	</Preset>
//
// Every envelope holds at least one point and a preset at least one track.
package sin
