/*

Package logger provides logging functionality to a blaze routing session by defining the required behavior in [Logger]
and providing an implementation of it with [BlazeLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [BlazeLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*BlazeLogger.Warn], [*BlazeLogger.Error], and [*BlazeLogger.Fatal] produce messages.

# BlazeLogger

The [BlazeLogger] provides all the logging functionality needed for a routing session.
It is the implementation of [Logger] returned by the [NewLogger] function.

Log messages emitted by [BlazeLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 [DEBUG] router/navigator.go:43 'navigated' log_context: "{"path":"/about"}"

The file, line number, and parent directory of where a [BlazeLogger] logged comprise the call site.
The message is the actual string passed into the [BlazeLogger] method, in this example, [*BlazeLogger.Debug].
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the routing session state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
