// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc encodes and decodes OpenSoundControl packets.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html)
//and covers the subset of it used by the Virtual Motion Capture protocol.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (Int32)
//	'f' (Float32)
//	's' (String)
//	'b' (Blob)
//	't' (Timetag)
//	'T' (true)
//	'F' (false)
//
//- Supports OSC bundles, including TimeTags, with a bounded nesting depth.
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet. An OSC packet consists of its contents, a contiguous block of
//binary data. The size of an OSC packet is always 32-bit aligned.
//
//OSC packets come in two flavors:
//
//OSC Messages: An OSC message consists of an OSC address pattern and  zero or more OSC arguments.
//
//OSC Bundles: An OSC Bundle consists of an OSC Timetag, followed by zero or more OSC bundle elements.
//Each bundle element can be another OSC bundle (note this recursive definition: a bundle may contain bundles) or OSC message.
//
//Usage
//
//Encoding:
//  msg := osc.NewMessage("/VMC/Ext/Blend/Val", osc.String("Joy"), osc.Float32(1))
//  data, err := osc.Encode(msg)
//
//Decoding:
//  p, err := osc.Decode(data)
//  if errors.Is(err, osc.ErrEOF) {
//      // truncated datagram
//  }
//  switch p := p.(type) {
//  case *osc.Message:
//      fmt.Println(p.Address, p.Arguments)
//  case *osc.Bundle:
//      fmt.Println(p.Timetag.Time(), len(p.Elements))
//  }
package osc
