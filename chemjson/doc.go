package chemjson

//Package chemjson implements serialization and unserialization of
//molgeo molecules. Its planned use is the communication of molgeo
//programs with other, independent programs which can be written in
//languages other than Go, as long as those languages implement a
//way of serializing and unserializing JSON data, for instance, via UNIX pipes.
//
//The bond list is always written, but it is ignored when a molecule is
//read back, since it is rebuilt from the coordinates.
